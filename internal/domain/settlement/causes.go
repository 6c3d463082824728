package settlement

// causes is the static Labor Code reference table. Only causes under art.
// 161 entitle the worker to the years-of-service and notice indemnities.
var causes = []Cause{
	{Code: "159-1", Label: "Mutuo acuerdo de las partes", Article: "Art. 159 N°1", HasIAS: false, HasIAP: false},
	{Code: "159-2", Label: "Renuncia del trabajador", Article: "Art. 159 N°2", HasIAS: false, HasIAP: false},
	{Code: "159-3", Label: "Muerte del trabajador", Article: "Art. 159 N°3", HasIAS: false, HasIAP: false},
	{Code: "159-4", Label: "Vencimiento del plazo convenido", Article: "Art. 159 N°4", HasIAS: false, HasIAP: false},
	{Code: "159-5", Label: "Conclusión del trabajo o servicio", Article: "Art. 159 N°5", HasIAS: false, HasIAP: false},
	{Code: "159-6", Label: "Caso fortuito o fuerza mayor", Article: "Art. 159 N°6", HasIAS: false, HasIAP: false},
	{Code: "160", Label: "Causales imputables al trabajador", Article: "Art. 160", HasIAS: false, HasIAP: false},
	{Code: "161-1", Label: "Necesidades de la empresa", Article: "Art. 161 inc. 1", HasIAS: true, HasIAP: true},
	{Code: "161-2", Label: "Desahucio del empleador", Article: "Art. 161 inc. 2", HasIAS: true, HasIAP: true},
}

// CauseRegistry is the static lookup of termination causes.
type CauseRegistry struct {
	byCode map[string]Cause
}

func NewCauseRegistry() *CauseRegistry {
	r := &CauseRegistry{byCode: make(map[string]Cause, len(causes))}
	for _, c := range causes {
		r.byCode[c.Code] = c
	}
	return r
}

func (r *CauseRegistry) Lookup(code string) (Cause, error) {
	c, ok := r.byCode[code]
	if !ok {
		return Cause{}, ErrCauseNotFound
	}
	return c, nil
}

func (r *CauseRegistry) List() []Cause {
	out := make([]Cause, len(causes))
	copy(out, causes)
	return out
}
