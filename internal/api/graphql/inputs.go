package graphql

import (
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/ptr"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

type addressInput struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Country *string
}

func (in *addressInput) toDomain() *domain.Address {
	if in == nil {
		return nil
	}
	return &domain.Address{
		Street:  deref(in.Street),
		City:    deref(in.City),
		State:   deref(in.State),
		ZipCode: deref(in.ZipCode),
		Country: deref(in.Country),
	}
}

type contactInput struct {
	Phone   *string
	Email   *string
	Website *string
}

func (in *contactInput) toDomain() *domain.Contact {
	if in == nil {
		return nil
	}
	return &domain.Contact{
		Phone:   deref(in.Phone),
		Email:   deref(in.Email),
		Website: deref(in.Website),
	}
}

type timeWindowInput struct {
	Ouverture *string
	Fermeture *string
	Prix      *float64
}

type tableInventoryInput struct {
	Size2 *int32
	Size4 *int32
	Size6 *int32
	Size8 *int32
}

func (in *tableInventoryInput) toDomain() domain.TableInventory {
	if in == nil {
		return domain.TableInventory{}
	}
	return domain.TableInventory{
		Size2: derefInt(in.Size2),
		Size4: derefInt(in.Size4),
		Size6: derefInt(in.Size6),
		Size8: derefInt(in.Size8),
	}
}

type customTableInput struct {
	Taille int32
	Nombre int32
}

func customTablesToDomain(in *[]*customTableInput) []domain.CustomTable {
	if in == nil {
		return nil
	}
	out := make([]domain.CustomTable, 0, len(*in))
	for _, c := range *in {
		out = append(out, domain.CustomTable{Size: int(c.Taille), Count: int(c.Nombre)})
	}
	return out
}

type closurePeriodInput struct {
	Debut string
	Fin   string
}

type openingPeriodInput struct {
	StartDate string
	EndDate   string
}

func openingPeriodsToDomain(in *[]*openingPeriodInput) (*[]domain.OpeningPeriod, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]domain.OpeningPeriod, 0, len(*in))
	for _, p := range *in {
		start, err := parseDate("openingPeriods", p.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDate("openingPeriods", p.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.OpeningPeriod{StartDate: start, EndDate: end})
	}
	return &out, nil
}

type settingsInput struct {
	Horaires                  *[]*timeWindowInput
	CapaciteTotale            *int32
	Tables                    *tableInventoryInput
	CustomTables              *[]*customTableInput
	FrequenceCreneauxMinutes  *int32
	MaxReservationsParCreneau *int32
	Fermetures                *[]*closurePeriodInput
	JoursOuverts              *[]string
	Currency                  *string
	Timezone                  *string
	TaxRate                   *float64
	ServiceFee                *float64
	MaxPartySize              *int32
	ReservationWindow         *int32
	CancellationHours         *int32
}

// toDomain переводит вход в частичное обновление; окна нормализуются при слиянии
func (in *settingsInput) toDomain() (*domain.SettingsPatch, error) {
	if in == nil {
		return nil, nil
	}

	p := &domain.SettingsPatch{
		TotalCapacity:          optInt(in.CapaciteTotale),
		SlotFrequencyMinutes:   optInt(in.FrequenceCreneauxMinutes),
		MaxReservationsPerSlot: optInt(in.MaxReservationsParCreneau),
		OpenDays:               in.JoursOuverts,
		Currency:               in.Currency,
		Timezone:               in.Timezone,
		TaxRate:                in.TaxRate,
		ServiceFee:             in.ServiceFee,
		MaxPartySize:           optInt(in.MaxPartySize),
		ReservationWindow:      optInt(in.ReservationWindow),
		CancellationHours:      optInt(in.CancellationHours),
	}

	if in.Horaires != nil {
		windows := make([]domain.TimeWindow, 0, len(*in.Horaires))
		for _, w := range *in.Horaires {
			windows = append(windows, domain.TimeWindow{
				Open:          types.TimeString(deref(w.Ouverture)),
				Close:         types.TimeString(deref(w.Fermeture)),
				PricePerGuest: derefFloat(w.Prix),
			})
		}
		p.TimeWindows = &windows
	}
	if in.Tables != nil {
		tables := in.Tables.toDomain()
		p.Tables = &tables
	}
	if in.CustomTables != nil {
		custom := customTablesToDomain(in.CustomTables)
		p.CustomTables = &custom
	}
	if in.Fermetures != nil {
		closures := make([]domain.ClosurePeriod, 0, len(*in.Fermetures))
		for _, c := range *in.Fermetures {
			start, err := parseDate(domain.FieldClosures, c.Debut)
			if err != nil {
				return nil, err
			}
			end, err := parseDate(domain.FieldClosures, c.Fin)
			if err != nil {
				return nil, err
			}
			closures = append(closures, domain.ClosurePeriod{Start: start, End: end})
		}
		p.Closures = &closures
	}

	return p, nil
}

type businessInput struct {
	Name           string
	Description    *string
	Address        *addressInput
	Contact        *contactInput
	Images         *[]string
	Cuisine        *[]string
	OpeningPeriods *[]*openingPeriodInput
	Amenities      *[]string
	StarRating     *int32
	Specialties    *[]string
	Settings       *settingsInput
}

func (in businessInput) toDomain() (*domain.Business, *domain.SettingsPatch, error) {
	b := &domain.Business{
		Name:        in.Name,
		Description: deref(in.Description),
		Images:      derefSlice(in.Images),
		Cuisine:     derefSlice(in.Cuisine),
		Amenities:   derefSlice(in.Amenities),
		StarRating:  derefInt(in.StarRating),
		Specialties: derefSlice(in.Specialties),
	}
	if a := in.Address.toDomain(); a != nil {
		b.Address = *a
	}
	if c := in.Contact.toDomain(); c != nil {
		b.Contact = *c
	}

	periods, err := openingPeriodsToDomain(in.OpeningPeriods)
	if err != nil {
		return nil, nil, err
	}
	if periods != nil {
		b.OpeningPeriods = *periods
	}

	settings, err := in.Settings.toDomain()
	if err != nil {
		return nil, nil, err
	}
	return b, settings, nil
}

type businessUpdateInput struct {
	Name           *string
	Description    *string
	Address        *addressInput
	Contact        *contactInput
	Images         *[]string
	IsActive       *bool
	Cuisine        *[]string
	OpeningPeriods *[]*openingPeriodInput
	Amenities      *[]string
	StarRating     *int32
	Specialties    *[]string
	Settings       *settingsInput
}

func (in businessUpdateInput) toDomain() (domain.BusinessPatch, *domain.SettingsPatch, error) {
	patch := domain.BusinessPatch{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address.toDomain(),
		Contact:     in.Contact.toDomain(),
		Images:      in.Images,
		IsActive:    in.IsActive,
		Cuisine:     in.Cuisine,
		Amenities:   in.Amenities,
		StarRating:  optInt(in.StarRating),
		Specialties: in.Specialties,
	}

	periods, err := openingPeriodsToDomain(in.OpeningPeriods)
	if err != nil {
		return domain.BusinessPatch{}, nil, err
	}
	patch.OpeningPeriods = periods

	settings, err := in.Settings.toDomain()
	if err != nil {
		return domain.BusinessPatch{}, nil, err
	}
	return patch, settings, nil
}

type customerInfoInput struct {
	Name  *string
	Email *string
	Phone *string
}

func (in *customerInfoInput) toDomain() *domain.CustomerInfo {
	if in == nil {
		return nil
	}
	return &domain.CustomerInfo{
		Name:  deref(in.Name),
		Email: deref(in.Email),
		Phone: deref(in.Phone),
	}
}

type reservationInput struct {
	BusinessID      graphql.ID
	BusinessType    string
	CustomerID      *string
	CustomerInfo    *customerInfoInput
	PartySize       int32
	Date            *string
	Time            *string
	Duration        *int32
	CheckIn         *string
	CheckOut        *string
	Emplacement     *string
	RoomID          *graphql.ID
	TableID         *graphql.ID
	ServiceID       *graphql.ID
	StaffID         *graphql.ID
	Notes           *string
	SpecialRequests *string
}

type reservationV2Input struct {
	RestaurantID graphql.ID
	Personnes    int32
	Heure        string
	Date         string
	Emplacement  *string
	CustomerID   *string
	CustomerInfo *customerInfoInput
	Notes        *string
}

type privatisationV2Input struct {
	RestaurantID graphql.ID
	Personnes    int32
	Heure        string
	Date         string
	Type         string
	Espace       *string
	Menu         *string
	DureeHeures  *int32
	CustomerID   *string
	CustomerInfo *customerInfoInput
}

type reservationUpdateInput struct {
	Status          *string
	Date            *string
	Time            *string
	PartySize       *int32
	Notes           *string
	SpecialRequests *string
	CustomerInfo    *customerInfoInput
}

func (in reservationUpdateInput) toDomain() (domain.ReservationPatch, error) {
	patch := domain.ReservationPatch{
		PartySize:       optInt(in.PartySize),
		Notes:           in.Notes,
		SpecialRequests: in.SpecialRequests,
		Customer:        in.CustomerInfo.toDomain(),
	}
	if in.Status != nil {
		st, err := domain.ParseReservationStatus(*in.Status)
		if err != nil {
			return domain.ReservationPatch{}, err
		}
		patch.Status = &st
	}
	if in.Date != nil {
		d, err := parseDate("date", *in.Date)
		if err != nil {
			return domain.ReservationPatch{}, err
		}
		patch.Date = &d
	}
	if in.Time != nil {
		ts, err := types.NewTimeStringFromString(*in.Time)
		if err != nil {
			return domain.ReservationPatch{}, domain.NewValidationError("time", "time must be in HH:MM format")
		}
		patch.Time = &ts
	}
	return patch, nil
}

type groupMenuInput struct {
	Nom         string
	Description *string
	Prix        float64
}

type privatisationOptionInput struct {
	RestaurantID        *graphql.ID
	Nom                 *string
	Description         *string
	Type                *string
	CapaciteMaximale    *int32
	DureeMaximaleHeures *int32
	MenusDeGroupe       *[]string
	MenusDetails        *[]*groupMenuInput
	Tarif               *float64
	Conditions          *string
}

func (in privatisationOptionInput) toDomain() (*domain.PrivatisationOption, error) {
	opt := &domain.PrivatisationOption{
		Name:             deref(in.Nom),
		Description:      deref(in.Description),
		Type:             deref(in.Type),
		MaxCapacity:      derefInt(in.CapaciteMaximale),
		MaxDurationHours: derefInt(in.DureeMaximaleHeures),
		GroupMenus:       derefSlice(in.MenusDeGroupe),
		Tariff:           in.Tarif,
		Conditions:       deref(in.Conditions),
	}
	if in.RestaurantID != nil {
		id, err := parseObjectID("restaurantId", *in.RestaurantID)
		if err != nil {
			return nil, err
		}
		opt.RestaurantID = id
	}
	if in.MenusDetails != nil {
		for _, m := range *in.MenusDetails {
			opt.MenuDetails = append(opt.MenuDetails, domain.GroupMenu{
				Name:        m.Nom,
				Description: deref(m.Description),
				Price:       m.Prix,
			})
		}
	}
	return opt, nil
}

type serviceInput struct {
	BusinessID   graphql.ID
	BusinessType *string
	Name         string
	Description  *string
	Category     *string
	Price        float64
	Duration     int32
	IsActive     *bool
}

func (in serviceInput) toDomain() (*domain.Service, error) {
	businessID, err := parseObjectID("businessId", in.BusinessID)
	if err != nil {
		return nil, err
	}
	bt, err := optBusinessType(in.BusinessType)
	if err != nil {
		return nil, err
	}
	return &domain.Service{
		BusinessID:      businessID,
		BusinessType:    bt,
		Name:            in.Name,
		Description:     deref(in.Description),
		Category:        deref(in.Category),
		Price:           in.Price,
		DurationMinutes: int(in.Duration),
		IsActive:        derefBool(in.IsActive, true),
	}, nil
}

type staffInput struct {
	BusinessID   graphql.ID
	BusinessType *string
	Name         string
	Role         *string
	Email        *string
	Phone        *string
	Specialties  *[]string
	IsActive     *bool
}

func (in staffInput) toDomain() (*domain.Staff, error) {
	businessID, err := parseObjectID("businessId", in.BusinessID)
	if err != nil {
		return nil, err
	}
	bt, err := optBusinessType(in.BusinessType)
	if err != nil {
		return nil, err
	}
	return &domain.Staff{
		BusinessID:   businessID,
		BusinessType: bt,
		Name:         in.Name,
		Role:         deref(in.Role),
		Email:        deref(in.Email),
		Phone:        deref(in.Phone),
		Specialties:  derefSlice(in.Specialties),
		IsActive:     derefBool(in.IsActive, true),
	}, nil
}

type tableInput struct {
	RestaurantID graphql.ID
	Number       string
	Capacity     int32
	Location     *string
	IsActive     *bool
}

func (in tableInput) toDomain() (*domain.Table, error) {
	restaurantID, err := parseObjectID("restaurantId", in.RestaurantID)
	if err != nil {
		return nil, err
	}
	return &domain.Table{
		BusinessID: restaurantID,
		Number:     in.Number,
		Capacity:   int(in.Capacity),
		Location:   deref(in.Location),
		IsActive:   derefBool(in.IsActive, true),
	}, nil
}

type roomInput struct {
	HotelID       graphql.ID
	Number        string
	Type          *string
	Capacity      int32
	PricePerNight float64
	Amenities     *[]string
	IsActive      *bool
}

func (in roomInput) toDomain() (*domain.Room, error) {
	hotelID, err := parseObjectID("hotelId", in.HotelID)
	if err != nil {
		return nil, err
	}
	return &domain.Room{
		BusinessID:    hotelID,
		Number:        in.Number,
		Type:          deref(in.Type),
		Capacity:      int(in.Capacity),
		PricePerNight: in.PricePerNight,
		Amenities:     derefSlice(in.Amenities),
		IsActive:      derefBool(in.IsActive, true),
	}, nil
}

// parseObjectID разбирает идентификатор документа; ошибка привязана к полю
func parseObjectID(field string, id graphql.ID) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError(field, "invalid id")
	}
	return oid, nil
}

func parseOptObjectID(field string, id *graphql.ID) (*primitive.ObjectID, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	oid, err := parseObjectID(field, *id)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

func parseInvoiceID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.NewValidationError("id", "invalid invoice id")
	}
	return n, nil
}

// parseDate разбирает дату YYYY-MM-DD; пустая строка - нулевая дата
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "date must be in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// timeArg нормализует "9:30" в "09:30"; некорректное значение передается как есть
// и отклоняется валидацией usecase с нужным именем поля
func timeArg(s string) types.TimeString {
	if ts, err := types.NewTimeStringFromString(s); err == nil {
		return ts
	}
	return types.TimeString(s)
}

func optBusinessType(s *string) (domain.BusinessType, error) {
	if s == nil || *s == "" {
		return "", nil
	}
	return domain.ParseBusinessType(*s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int32) int {
	if n == nil {
		return 0
	}
	return int(*n)
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefBool(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func derefSlice(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}

func optInt(n *int32) *int {
	if n == nil {
		return nil
	}
	return ptr.Ptr(int(*n))
}
