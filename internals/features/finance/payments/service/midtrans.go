// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "hostelku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Customer input
========================================================= */

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string // optional
	City      string // optional
	Postcode  string // optional
	Country   string // optional, default "IDN"
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken builds the gateway transaction for an online rent
// payment. The payment's external id doubles as the gateway OrderID, which is
// how the webhook finds its way back to the row.
func GenerateSnapToken(p model.Payment, cust CustomerInput) (string, string, error) {
	if !p.PaymentAmount.IsPositive() {
		return "", "", errors.New("invalid payment_amount")
	}
	if p.PaymentExternalID == nil || *p.PaymentExternalID == "" {
		return "", "", errors.New("payment_external_id is required (used as OrderID)")
	}

	gross := p.PaymentAmount.Round(0).IntPart()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *p.PaymentExternalID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
			Phone: cust.Phone,
			BillAddr: &midtrans.CustomerAddress{
				FName:       cust.FirstName,
				LName:       cust.LastName,
				Phone:       cust.Phone,
				Address:     cust.Address,
				City:        cust.City,
				Postcode:    cust.Postcode,
				CountryCode: defaultString(cust.Country, "IDN"),
			},
		},
	}

	itemName := "Rent Payment"
	if p.PaymentForPeriod != "" {
		itemName = "Rent " + p.PaymentForPeriod
	}
	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       *p.PaymentExternalID,
			Price:    gross,
			Qty:      1,
			Name:     truncate(itemName, 50),
			Category: defaultString(p.PaymentChargeType, "Rent"),
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Utils
========================================================= */

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

func defaultString(s string, def string) string {
	if s == "" {
		return def
	}
	return s
}
