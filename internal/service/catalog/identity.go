package catalog

import "github.com/m04kA/SMC-HospitalityService/internal/domain"

// inherit переносит в dst неизменяемые поля src: ID, бизнес и дату создания
func inherit[T Item](dst, src *T) {
	switch d := any(dst).(type) {
	case *domain.Service:
		s := any(src).(*domain.Service)
		d.ID, d.BusinessID, d.BusinessType, d.CreatedAt = s.ID, s.BusinessID, s.BusinessType, s.CreatedAt
	case *domain.Staff:
		s := any(src).(*domain.Staff)
		d.ID, d.BusinessID, d.BusinessType, d.CreatedAt = s.ID, s.BusinessID, s.BusinessType, s.CreatedAt
	case *domain.Table:
		s := any(src).(*domain.Table)
		d.ID, d.BusinessID, d.BusinessType, d.CreatedAt = s.ID, s.BusinessID, s.BusinessType, s.CreatedAt
	case *domain.Room:
		s := any(src).(*domain.Room)
		d.ID, d.BusinessID, d.BusinessType, d.CreatedAt = s.ID, s.BusinessID, s.BusinessType, s.CreatedAt
	}
}

func setBusinessType[T Item](item *T, bt domain.BusinessType) {
	switch v := any(item).(type) {
	case *domain.Table:
		v.BusinessType = bt
	case *domain.Room:
		v.BusinessType = bt
	case *domain.Service:
		v.BusinessType = bt
	case *domain.Staff:
		v.BusinessType = bt
	}
}
