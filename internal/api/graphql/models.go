package graphql

import (
	"strconv"
	"time"

	"github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/ptr"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339
)

type addressDTO struct {
	Street  *string
	City    *string
	State   *string
	ZipCode *string
	Country *string
}

type contactDTO struct {
	Phone   *string
	Email   *string
	Website *string
}

type timeWindowDTO struct {
	Ouverture string
	Fermeture string
	Prix      float64
}

type tableInventoryDTO struct {
	Size2 int32
	Size4 int32
	Size6 int32
	Size8 int32
}

type customTableDTO struct {
	Taille int32
	Nombre int32
}

type closurePeriodDTO struct {
	Debut string
	Fin   string
}

type settingsDTO struct {
	Horaires                  []*timeWindowDTO
	CapaciteTotale            int32
	Tables                    *tableInventoryDTO
	CustomTables              []*customTableDTO
	CapaciteTheorique         int32
	FrequenceCreneauxMinutes  int32
	MaxReservationsParCreneau int32
	Fermetures                []*closurePeriodDTO
	JoursOuverts              []string
	Currency                  string
	Timezone                  *string
	TaxRate                   float64
	ServiceFee                float64
	MaxPartySize              int32
	ReservationWindow         int32
	CancellationHours         int32
}

type openingPeriodDTO struct {
	StartDate string
	EndDate   string
}

type businessDTO struct {
	ID             graphql.ID
	BusinessType   string
	OwnerID        *string
	Name           string
	Description    *string
	Address        *addressDTO
	Contact        *contactDTO
	Images         []string
	IsActive       bool
	Settings       *settingsDTO
	Cuisine        []string
	OpeningPeriods []*openingPeriodDTO
	Amenities      []string
	StarRating     *int32
	Specialties    []string
	CreatedAt      string
	UpdatedAt      string
}

func toBusiness(b *domain.Business) *businessDTO {
	dto := &businessDTO{
		ID:           objectID(b.ID),
		BusinessType: string(b.Type),
		OwnerID:      optString(b.OwnerID),
		Name:         b.Name,
		Description:  optString(b.Description),
		Address: &addressDTO{
			Street:  optString(b.Address.Street),
			City:    optString(b.Address.City),
			State:   optString(b.Address.State),
			ZipCode: optString(b.Address.ZipCode),
			Country: optString(b.Address.Country),
		},
		Contact: &contactDTO{
			Phone:   optString(b.Contact.Phone),
			Email:   optString(b.Contact.Email),
			Website: optString(b.Contact.Website),
		},
		Images:         nonNil(b.Images),
		IsActive:       b.IsActive,
		Cuisine:        nonNil(b.Cuisine),
		OpeningPeriods: make([]*openingPeriodDTO, 0, len(b.OpeningPeriods)),
		Amenities:      nonNil(b.Amenities),
		Specialties:    nonNil(b.Specialties),
		CreatedAt:      timestamp(b.CreatedAt),
		UpdatedAt:      timestamp(b.UpdatedAt),
	}

	if b.Type == domain.BusinessTypeRestaurant {
		dto.Settings = toSettings(b.RestaurantSettings())
	}
	if b.Type == domain.BusinessTypeHotel {
		dto.StarRating = ptr.Ptr(int32(b.StarRating))
	}
	for _, p := range b.OpeningPeriods {
		dto.OpeningPeriods = append(dto.OpeningPeriods, &openingPeriodDTO{
			StartDate: p.StartDate.Format(dateLayout),
			EndDate:   p.EndDate.Format(dateLayout),
		})
	}
	return dto
}

func toBusinesses(list []*domain.Business) []*businessDTO {
	out := make([]*businessDTO, 0, len(list))
	for _, b := range list {
		out = append(out, toBusiness(b))
	}
	return out
}

func toSettings(s domain.RestaurantSettings) *settingsDTO {
	dto := &settingsDTO{
		Horaires:       make([]*timeWindowDTO, 0, len(s.TimeWindows)),
		CapaciteTotale: int32(s.TotalCapacity),
		Tables: &tableInventoryDTO{
			Size2: int32(s.Tables.Size2),
			Size4: int32(s.Tables.Size4),
			Size6: int32(s.Tables.Size6),
			Size8: int32(s.Tables.Size8),
		},
		CustomTables:              make([]*customTableDTO, 0, len(s.CustomTables)),
		CapaciteTheorique:         int32(s.TheoreticalCapacity),
		FrequenceCreneauxMinutes:  int32(s.SlotFrequencyMinutes),
		MaxReservationsParCreneau: int32(s.MaxReservationsPerSlot),
		Fermetures:                make([]*closurePeriodDTO, 0, len(s.Closures)),
		JoursOuverts:              nonNil(s.OpenDays),
		Currency:                  s.Currency,
		Timezone:                  optString(s.Timezone),
		TaxRate:                   s.TaxRate,
		ServiceFee:                s.ServiceFee,
		MaxPartySize:              int32(s.MaxPartySize),
		ReservationWindow:         int32(s.ReservationWindow),
		CancellationHours:         int32(s.CancellationHours),
	}
	if dto.Currency == "" {
		dto.Currency = domain.DefaultCurrency
	}
	for _, w := range s.TimeWindows {
		dto.Horaires = append(dto.Horaires, &timeWindowDTO{
			Ouverture: w.Open.String(),
			Fermeture: w.Close.String(),
			Prix:      w.PricePerGuest,
		})
	}
	for _, c := range s.CustomTables {
		dto.CustomTables = append(dto.CustomTables, &customTableDTO{Taille: int32(c.Size), Nombre: int32(c.Count)})
	}
	for _, c := range s.Closures {
		dto.Fermetures = append(dto.Fermetures, &closurePeriodDTO{
			Debut: c.Start.Format(dateLayout),
			Fin:   c.End.Format(dateLayout),
		})
	}
	return dto
}

type slotDTO struct {
	Time          string
	Available     bool
	Remaining     int32
	Reserved      int32
	Limit         int32
	OccupancyRate float64
}

func toSlots(slots []domain.SlotAvailability) []*slotDTO {
	out := make([]*slotDTO, 0, len(slots))
	for i := range slots {
		s := &slots[i]
		out = append(out, &slotDTO{
			Time:          s.Time.String(),
			Available:     s.Available,
			Remaining:     int32(s.Remaining()),
			Reserved:      int32(s.Reserved),
			Limit:         int32(s.Limit),
			OccupancyRate: s.OccupancyRate(),
		})
	}
	return out
}

type customerInfoDTO struct {
	Name  *string
	Email *string
	Phone *string
}

type privatisationDetailsDTO struct {
	Type        string
	Espace      string
	Menu        string
	DureeHeures int32
}

type reservationDTO struct {
	ID              graphql.ID
	BusinessID      graphql.ID
	BusinessType    string
	Kind            string
	CustomerID      *string
	CustomerInfo    *customerInfoDTO
	PartySize       int32
	Date            string
	Time            *string
	Duration        *int32
	CheckIn         *string
	CheckOut        *string
	Emplacement     *string
	RoomID          *graphql.ID
	TableID         *graphql.ID
	ServiceID       *graphql.ID
	StaffID         *graphql.ID
	Privatisation   *privatisationDetailsDTO
	Status          string
	TotalAmount     float64
	Notes           *string
	SpecialRequests *string
	CreatedAt       string
	UpdatedAt       string
}

func toReservation(r *domain.Reservation) *reservationDTO {
	dto := &reservationDTO{
		ID:              objectID(r.ID),
		BusinessID:      objectID(r.BusinessID),
		BusinessType:    string(r.BusinessType),
		Kind:            string(r.Kind),
		CustomerID:      optString(r.CustomerID),
		PartySize:       int32(r.PartySize),
		Date:            r.Date.Format(dateLayout),
		Time:            optString(r.Time.String()),
		CheckIn:         optDate(r.CheckIn),
		CheckOut:        optDate(r.CheckOut),
		Emplacement:     optString(r.Seating),
		RoomID:          optObjectID(r.RoomID),
		TableID:         optObjectID(r.TableID),
		ServiceID:       optObjectID(r.ServiceID),
		StaffID:         optObjectID(r.StaffID),
		Status:          string(r.Status),
		TotalAmount:     r.TotalAmount,
		Notes:           optString(r.Notes),
		SpecialRequests: optString(r.SpecialRequests),
		CreatedAt:       timestamp(r.CreatedAt),
		UpdatedAt:       timestamp(r.UpdatedAt),
	}
	if r.Duration > 0 {
		dto.Duration = ptr.Ptr(int32(r.Duration))
	}
	if r.Customer != nil {
		dto.CustomerInfo = &customerInfoDTO{
			Name:  optString(r.Customer.Name),
			Email: optString(r.Customer.Email),
			Phone: optString(r.Customer.Phone),
		}
	}
	if r.Privatisation != nil {
		dto.Privatisation = &privatisationDetailsDTO{
			Type:        r.Privatisation.Type,
			Espace:      r.Privatisation.Space,
			Menu:        r.Privatisation.Menu,
			DureeHeures: int32(r.Privatisation.DurationHours),
		}
	}
	return dto
}

func toReservations(list []*domain.Reservation) []*reservationDTO {
	out := make([]*reservationDTO, 0, len(list))
	for _, r := range list {
		out = append(out, toReservation(r))
	}
	return out
}

type groupMenuDTO struct {
	Nom         string
	Description *string
	Prix        float64
}

type privatisationOptionDTO struct {
	ID                  graphql.ID
	RestaurantID        graphql.ID
	Nom                 string
	Description         *string
	Type                string
	CapaciteMaximale    int32
	DureeMaximaleHeures int32
	MenusDeGroupe       []string
	MenusDetails        []*groupMenuDTO
	Tarif               *float64
	Conditions          *string
	CreatedAt           string
	UpdatedAt           string
}

func toPrivatisationOption(o *domain.PrivatisationOption) *privatisationOptionDTO {
	dto := &privatisationOptionDTO{
		ID:                  objectID(o.ID),
		RestaurantID:        objectID(o.RestaurantID),
		Nom:                 o.Name,
		Description:         optString(o.Description),
		Type:                o.Type,
		CapaciteMaximale:    int32(o.MaxCapacity),
		DureeMaximaleHeures: int32(o.MaxDurationHours),
		MenusDeGroupe:       nonNil(o.GroupMenus),
		MenusDetails:        make([]*groupMenuDTO, 0, len(o.MenuDetails)),
		Tarif:               o.Tariff,
		Conditions:          optString(o.Conditions),
		CreatedAt:           timestamp(o.CreatedAt),
		UpdatedAt:           timestamp(o.UpdatedAt),
	}
	for _, m := range o.MenuDetails {
		dto.MenusDetails = append(dto.MenusDetails, &groupMenuDTO{
			Nom:         m.Name,
			Description: optString(m.Description),
			Prix:        m.Price,
		})
	}
	return dto
}

type serviceDTO struct {
	ID           graphql.ID
	BusinessID   graphql.ID
	BusinessType string
	Name         string
	Description  *string
	Category     *string
	Price        float64
	Duration     int32
	IsActive     bool
	CreatedAt    string
	UpdatedAt    string
}

func toService(s *domain.Service) *serviceDTO {
	return &serviceDTO{
		ID:           objectID(s.ID),
		BusinessID:   objectID(s.BusinessID),
		BusinessType: string(s.BusinessType),
		Name:         s.Name,
		Description:  optString(s.Description),
		Category:     optString(s.Category),
		Price:        s.Price,
		Duration:     int32(s.DurationMinutes),
		IsActive:     s.IsActive,
		CreatedAt:    timestamp(s.CreatedAt),
		UpdatedAt:    timestamp(s.UpdatedAt),
	}
}

type staffDTO struct {
	ID           graphql.ID
	BusinessID   graphql.ID
	BusinessType string
	Name         string
	Role         *string
	Email        *string
	Phone        *string
	Specialties  []string
	IsActive     bool
	CreatedAt    string
	UpdatedAt    string
}

func toStaff(s *domain.Staff) *staffDTO {
	return &staffDTO{
		ID:           objectID(s.ID),
		BusinessID:   objectID(s.BusinessID),
		BusinessType: string(s.BusinessType),
		Name:         s.Name,
		Role:         optString(s.Role),
		Email:        optString(s.Email),
		Phone:        optString(s.Phone),
		Specialties:  nonNil(s.Specialties),
		IsActive:     s.IsActive,
		CreatedAt:    timestamp(s.CreatedAt),
		UpdatedAt:    timestamp(s.UpdatedAt),
	}
}

type tableDTO struct {
	ID           graphql.ID
	RestaurantID graphql.ID
	Number       string
	Capacity     int32
	Location     *string
	IsActive     bool
	CreatedAt    string
	UpdatedAt    string
}

func toTable(t *domain.Table) *tableDTO {
	return &tableDTO{
		ID:           objectID(t.ID),
		RestaurantID: objectID(t.BusinessID),
		Number:       t.Number,
		Capacity:     int32(t.Capacity),
		Location:     optString(t.Location),
		IsActive:     t.IsActive,
		CreatedAt:    timestamp(t.CreatedAt),
		UpdatedAt:    timestamp(t.UpdatedAt),
	}
}

type roomDTO struct {
	ID            graphql.ID
	HotelID       graphql.ID
	Number        string
	Type          *string
	Capacity      int32
	PricePerNight float64
	Amenities     []string
	IsActive      bool
	CreatedAt     string
	UpdatedAt     string
}

func toRoom(r *domain.Room) *roomDTO {
	return &roomDTO{
		ID:            objectID(r.ID),
		HotelID:       objectID(r.BusinessID),
		Number:        r.Number,
		Type:          optString(r.Type),
		Capacity:      int32(r.Capacity),
		PricePerNight: r.PricePerNight,
		Amenities:     nonNil(r.Amenities),
		IsActive:      r.IsActive,
		CreatedAt:     timestamp(r.CreatedAt),
		UpdatedAt:     timestamp(r.UpdatedAt),
	}
}

type invoiceItemDTO struct {
	ID          graphql.ID
	Description string
	Price       float64
	Quantity    int32
	Total       float64
}

type invoiceDTO struct {
	ID            graphql.ID
	Number        string
	ReservationID graphql.ID
	BusinessID    graphql.ID
	BusinessType  string
	Items         []*invoiceItemDTO
	Total         float64
	Currency      string
	Status        string
	IssuedAt      string
	CreatedAt     string
}

func toInvoice(inv *domain.Invoice) *invoiceDTO {
	dto := &invoiceDTO{
		ID:            int64ID(inv.ID),
		Number:        inv.Number,
		ReservationID: graphql.ID(inv.ReservationID),
		BusinessID:    graphql.ID(inv.BusinessID),
		BusinessType:  string(inv.BusinessType),
		Items:         make([]*invoiceItemDTO, 0, len(inv.Items)),
		Total:         inv.Total,
		Currency:      inv.Currency,
		Status:        string(inv.Status),
		IssuedAt:      timestamp(inv.IssuedAt),
		CreatedAt:     timestamp(inv.CreatedAt),
	}
	for _, it := range inv.Items {
		dto.Items = append(dto.Items, &invoiceItemDTO{
			ID:          int64ID(it.ID),
			Description: it.Description,
			Price:       it.Price,
			Quantity:    int32(it.Quantity),
			Total:       it.Total,
		})
	}
	return dto
}

func objectID(id primitive.ObjectID) graphql.ID {
	return graphql.ID(id.Hex())
}

func optObjectID(id *primitive.ObjectID) *graphql.ID {
	if id == nil {
		return nil
	}
	return ptr.Ptr(objectID(*id))
}

func int64ID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(t.Format(dateLayout))
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

// nonNil возвращает непустой срез для non-null списков
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
