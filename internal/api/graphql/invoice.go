package graphql

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/m04kA/SMC-HospitalityService/internal/service/invoices"
)

type businessArgs struct {
	BusinessID graphql.ID
}

type reservationArgs struct {
	ReservationID graphql.ID
}

func (r *Resolver) Invoice(ctx context.Context, args idArgs) (*invoiceDTO, error) {
	id, err := parseInvoiceID(args.ID)
	if err != nil {
		return nil, r.mapError("invoice", err)
	}
	inv, err := r.deps.Invoices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invoices.ErrInvoiceNotFound) {
			return nil, nil
		}
		return nil, r.mapError("invoice", err)
	}
	return toInvoice(inv), nil
}

func (r *Resolver) InvoicesByBusiness(ctx context.Context, args businessArgs) ([]*invoiceDTO, error) {
	businessID, err := parseObjectID("businessId", args.BusinessID)
	if err != nil {
		return nil, r.mapError("invoicesByBusiness", err)
	}
	list, err := r.deps.Invoices.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, r.mapError("invoicesByBusiness", err)
	}

	out := make([]*invoiceDTO, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoice(inv))
	}
	return out, nil
}

func (r *Resolver) InvoiceByReservation(ctx context.Context, args reservationArgs) (*invoiceDTO, error) {
	if _, err := parseObjectID("reservationId", args.ReservationID); err != nil {
		return nil, r.mapError("invoiceByReservation", err)
	}
	inv, err := r.deps.Invoices.GetByReservationID(ctx, string(args.ReservationID))
	if err != nil {
		if errors.Is(err, invoices.ErrInvoiceNotFound) {
			return nil, nil
		}
		return nil, r.mapError("invoiceByReservation", err)
	}
	return toInvoice(inv), nil
}

// GenerateInvoicePdf возвращает PDF счета в Base64
func (r *Resolver) GenerateInvoicePdf(ctx context.Context, args idArgs) (string, error) {
	id, err := parseInvoiceID(args.ID)
	if err != nil {
		return "", r.mapError("generateInvoicePdf", err)
	}
	pdf, _, err := r.deps.Invoices.RenderPDF(ctx, id)
	if err != nil {
		return "", r.mapError("generateInvoicePdf", err)
	}
	return base64.StdEncoding.EncodeToString(pdf), nil
}
