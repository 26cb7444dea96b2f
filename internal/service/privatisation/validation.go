package privatisation

import (
	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

func validateOption(opt *domain.PrivatisationOption) error {
	if opt.Name == "" || len(opt.Name) > domain.MaxNameLength {
		return domain.NewValidationError("nom", "Le nom est obligatoire.")
	}
	if opt.Type == "" {
		return domain.NewValidationError("type", "Le type est obligatoire.")
	}
	if opt.MaxCapacity <= 0 {
		return domain.NewValidationError("capaciteMaximale", "La capacité maximale doit être positive.")
	}
	if opt.MaxDurationHours <= 0 {
		return domain.NewValidationError("dureeMaximaleHeures", "La durée maximale doit être positive.")
	}
	if opt.Tariff != nil && *opt.Tariff < 0 {
		return domain.NewValidationError("tarif", "Le tarif ne peut pas être négatif.")
	}
	for _, m := range opt.MenuDetails {
		if m.Name == "" {
			return domain.NewValidationError("menusDetails", "Chaque menu doit avoir un nom.")
		}
		if m.Price < 0 {
			return domain.NewValidationError("menusDetails", "Le prix d'un menu ne peut pas être négatif.")
		}
	}
	return nil
}
