package invoice

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/billing/model"
	"encore.app/billing/repository/contracts"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/repository/schedules"
)

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func convertDBInvoiceToModel(dbInv invoices.Invoice) *model.Invoice {
	inv := &model.Invoice{
		ID:              dbInv.ID,
		InvoiceNumber:   dbInv.InvoiceNumber,
		Currency:        dbInv.Currency,
		Subtotal:        numericToDecimal(dbInv.Subtotal),
		TaxRate:         numericToDecimal(dbInv.TaxRate),
		TaxAmount:       numericToDecimal(dbInv.TaxAmount),
		Discount:        numericToDecimal(dbInv.Discount),
		TotalAmount:     numericToDecimal(dbInv.TotalAmount),
		PaidAmount:      numericToDecimal(dbInv.PaidAmount),
		Balance:         numericToDecimal(dbInv.Balance),
		Status:          model.InvoiceStatus(dbInv.Status),
		IssueDate:       dbInv.IssueDate.Time,
		DueDate:         dbInv.DueDate.Time,
		EmailSent:       dbInv.EmailSent,
		EmailRecipients: dbInv.EmailRecipients,
		CreatedAt:       dbInv.CreatedAt.Time,
		UpdatedAt:       dbInv.UpdatedAt.Time,
	}

	if dbInv.ContractID.Valid {
		inv.ContractID = &dbInv.ContractID.Int64
	}
	if dbInv.ScheduleID.Valid {
		inv.ScheduleID = &dbInv.ScheduleID.Int64
	}
	if dbInv.CustomerID.Valid {
		inv.CustomerID = &dbInv.CustomerID.Int64
	}
	if dbInv.PaymentMethod.Valid {
		inv.PaymentMethod = &dbInv.PaymentMethod.String
	}
	if dbInv.PaymentReference.Valid {
		inv.PaymentReference = &dbInv.PaymentReference.String
	}
	if dbInv.PaymentDate.Valid {
		inv.PaymentDate = &dbInv.PaymentDate.Time
	}
	if dbInv.EmailSentAt.Valid {
		inv.EmailSentAt = &dbInv.EmailSentAt.Time
	}
	if dbInv.PaymentToken.Valid {
		inv.PaymentToken = &dbInv.PaymentToken.String
	}
	if dbInv.PaymentTokenExpires.Valid {
		inv.PaymentTokenExpires = &dbInv.PaymentTokenExpires.Time
	}
	if dbInv.WorkflowID.Valid {
		inv.WorkflowID = &dbInv.WorkflowID.String
	}

	return inv
}

func convertDBLineItemToModel(dbLine invoices.InvoiceLineItem) model.LineItem {
	return model.LineItem{
		ID:          dbLine.ID,
		InvoiceID:   dbLine.InvoiceID,
		Description: dbLine.Description,
		Quantity:    numericToDecimal(dbLine.Quantity),
		UnitPrice:   numericToDecimal(dbLine.UnitPrice),
		Total:       numericToDecimal(dbLine.Total),
	}
}

func convertDBContractToModel(dbContract contracts.Contract) *model.Contract {
	c := &model.Contract{
		ID:               dbContract.ID,
		ContractNumber:   dbContract.ContractNumber,
		Type:             model.ContractType(dbContract.ContractType),
		BillingFrequency: model.BillingFrequency(dbContract.BillingFrequency),
		TotalAmount:      numericToDecimal(dbContract.TotalAmount),
		PaymentTermsDays: DefaultPaymentTermsDays,
		CreatedAt:        dbContract.CreatedAt.Time,
		UpdatedAt:        dbContract.UpdatedAt.Time,
	}

	if dbContract.CustomerID.Valid {
		c.CustomerID = &dbContract.CustomerID.Int64
	}
	if dbContract.VatRate.Valid {
		rate := numericToDecimal(dbContract.VatRate)
		c.VATRate = &rate
	}
	if dbContract.PaymentTermsDays.Valid {
		c.PaymentTermsDays = dbContract.PaymentTermsDays.Int32
	}

	// The payment calculation block exists iff its hourly rate and rhythm
	// are both set; partial blocks are treated as absent.
	if dbContract.HourlyRate.Valid && dbContract.RhythmCountByYear.Valid {
		c.Calculation = &model.PaymentCalculation{
			QuantityHours:              numericToDecimal(dbContract.QuantityHours),
			HourlyRate:                 numericToDecimal(dbContract.HourlyRate),
			VATRate:                    numericToDecimal(dbContract.CalcVatRate),
			RhythmCountByYear:          dbContract.RhythmCountByYear.Int32,
			EmployeeHoursPerEngagement: numericToDecimal(dbContract.EmployeeHoursPerEngagement),
			NumberOfEmployees:          dbContract.NumberOfEmployees.Int32,
		}
	}

	return c
}

func convertDBContractServices(dbServices []contracts.ContractService) []model.ContractService {
	services := make([]model.ContractService, len(dbServices))
	for i, s := range dbServices {
		services[i] = model.ContractService{
			ID:        s.ID,
			Name:      s.Name,
			Frequency: s.Frequency.String,
			UnitPrice: numericToDecimal(s.UnitPrice),
		}
	}
	return services
}

func convertDBScheduleToModel(dbSchedule schedules.Schedule) *model.ScheduleOccurrence {
	s := &model.ScheduleOccurrence{
		ID:           dbSchedule.ID,
		CleaningType: dbSchedule.CleaningType.String,
		Status:       model.ScheduleStatus(dbSchedule.Status),
		ScheduledAt:  dbSchedule.ScheduledAt.Time,
		CreatedAt:    dbSchedule.CreatedAt.Time,
		UpdatedAt:    dbSchedule.UpdatedAt.Time,
	}

	if dbSchedule.ContractID.Valid {
		s.ContractID = &dbSchedule.ContractID.Int64
	}
	if dbSchedule.LocationID.Valid {
		s.LocationID = &dbSchedule.LocationID.Int64
	}
	if dbSchedule.EstimatedDuration.Valid {
		d := numericToDecimal(dbSchedule.EstimatedDuration)
		s.EstimatedDuration = &d
	}
	if dbSchedule.ActualDuration.Valid {
		d := numericToDecimal(dbSchedule.ActualDuration)
		s.ActualDuration = &d
	}

	return s
}
