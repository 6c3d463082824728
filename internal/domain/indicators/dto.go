package indicators

import (
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpsertRequest loads or corrects the indicator set for one period.
type UpsertRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	UF            decimal.Decimal `json:"uf"`
	UTM           decimal.Decimal `json:"utm"`
	MinimumIncome decimal.Decimal `json:"minimum_income"`
	SISPct        decimal.Decimal `json:"sis_pct"`

	AFP          map[string]AFPRates                          `json:"afp"`
	Unemployment map[employee.ContractClass]UnemploymentRates `json:"unemployment"`
	Brackets     []TaxBracket                                 `json:"brackets"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "invalid year/month"})
	}
	if !r.UF.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "uf", Message: "must be greater than zero"})
	}
	if !r.UTM.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "utm", Message: "must be greater than zero"})
	}
	if !r.MinimumIncome.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "minimum_income", Message: "must be greater than zero"})
	}
	for code := range r.AFP {
		if !validator.IsValidAFPCode(code) {
			errs = append(errs, validator.ValidationError{Field: "afp", Message: "invalid fund code " + code})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Indicators converts the validated request to the storage entity.
func (r *UpsertRequest) Indicators() *PeriodIndicators {
	return &PeriodIndicators{
		Year:          r.Year,
		Month:         r.Month,
		UF:            r.UF,
		UTM:           r.UTM,
		MinimumIncome: r.MinimumIncome,
		SISPct:        r.SISPct,
		AFP:           r.AFP,
		Unemployment:  r.Unemployment,
		Brackets:      r.Brackets,
	}
}
