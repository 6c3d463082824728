package contribution

import (
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/shopspring/decimal"
)

// staticAFPRates is the documented fallback table used when a fund's live
// rate is absent from the period indicators. Worker percentage is the 10%
// pension base plus the fund commission. Keep in sync with the Previred
// table when commissions change.
var staticAFPRates = map[string]indicators.AFPRates{
	"capital":   {WorkerPct: decimal.RequireFromString("11.44"), EmployerPct: decimal.Zero},
	"cuprum":    {WorkerPct: decimal.RequireFromString("11.44"), EmployerPct: decimal.Zero},
	"habitat":   {WorkerPct: decimal.RequireFromString("11.27"), EmployerPct: decimal.Zero},
	"modelo":    {WorkerPct: decimal.RequireFromString("10.58"), EmployerPct: decimal.Zero},
	"planvital": {WorkerPct: decimal.RequireFromString("11.16"), EmployerPct: decimal.Zero},
	"provida":   {WorkerPct: decimal.RequireFromString("11.45"), EmployerPct: decimal.Zero},
	"uno":       {WorkerPct: decimal.RequireFromString("10.49"), EmployerPct: decimal.Zero},
}

// staticSISPct is the employer-paid disability/survivor insurance fallback.
var staticSISPct = decimal.RequireFromString("1.88")

// staticUnemployment holds the legal unemployment-insurance split by
// contract class. The worker side is fixed at 0.6% for indefinite contracts;
// fixed-term and temporary contracts are employer-only.
var staticUnemployment = map[employee.ContractClass]indicators.UnemploymentRates{
	employee.ContractIndefinite: {WorkerPct: decimal.RequireFromString("0.6"), EmployerPct: decimal.RequireFromString("2.4")},
	employee.ContractFixedTerm:  {WorkerPct: decimal.Zero, EmployerPct: decimal.RequireFromString("3.0")},
	employee.ContractTemporary:  {WorkerPct: decimal.Zero, EmployerPct: decimal.RequireFromString("3.0")},
}
