package update_restaurant

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// Request модель запроса на обновление ресторана
type Request struct {
	ID       primitive.ObjectID
	Patch    domain.BusinessPatch
	Settings *domain.SettingsPatch // nil - настройки не меняются
}

// Response модель ответа с обновленным рестораном
type Response struct {
	Restaurant *domain.Business
}
