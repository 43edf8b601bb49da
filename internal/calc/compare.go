package calc

// Instrument is an investment option with an illustrative annual rate.
type Instrument struct {
	Name string  `yaml:"name" validate:"required"`
	Rate float64 `yaml:"rate" validate:"gte=0"`
	Risk string  `yaml:"risk" validate:"required"`
}

// DefaultInstruments is the comparison table, lowest risk first.
var DefaultInstruments = []Instrument{
	{Name: "Plazo Fijo", Rate: 8, Risk: "Bajo"},
	{Name: "FCI Money Market", Rate: 10, Risk: "Bajo"},
	{Name: "Bonos Corporativos", Rate: 12, Risk: "Medio"},
	{Name: "Fondos Balanceados", Rate: 15, Risk: "Medio"},
	{Name: "ETF S&P500", Rate: 18, Risk: "Medio-Alto"},
	{Name: "Acciones Individuales", Rate: 25, Risk: "Alto"},
	{Name: "Criptomonedas", Rate: 50, Risk: "Muy Alto"},
}

// Comparison is one row of CompareInvestments.
type Comparison struct {
	Name        string
	Risk        string
	Rate        float64
	FinalAmount float64
	Gain        float64
}

// CompareInvestments runs CompoundInterest without contributions for every
// instrument. Rows keep the order of table; they are not sorted by result.
func CompareInvestments(amount float64, years int, table []Instrument) []Comparison {
	if table == nil {
		table = DefaultInstruments
	}
	out := make([]Comparison, 0, len(table))
	for _, in := range table {
		g := CompoundInterest(amount, in.Rate, float64(years), 0)
		out = append(out, Comparison{
			Name:        in.Name,
			Risk:        in.Risk,
			Rate:        in.Rate,
			FinalAmount: g.FinalAmount,
			Gain:        g.Gain,
		})
	}
	return out
}

// Retirement estimates the capital built by saving monthly until retiring.
type Retirement struct {
	Years           int
	TotalSaved      float64
	Capital         float64
	InterestGain    float64
	MonthlyIncome   float64
	WithdrawalRatio float64
}

// RetirementEstimate compounds monthly savings from zero between age and
// retireAge and derives a monthly income from an annual withdrawal ratio
// (0.04 is the usual 4% rule).
func RetirementEstimate(age, retireAge int, monthly, annualRate, withdrawal float64) (Retirement, error) {
	years := retireAge - age
	if years <= 0 {
		return Retirement{}, ErrInvalidRetirementAge
	}
	g := CompoundInterest(0, annualRate, float64(years), monthly)
	return Retirement{
		Years:           years,
		TotalSaved:      g.TotalInvested,
		Capital:         g.FinalAmount,
		InterestGain:    g.Gain,
		MonthlyIncome:   round2(g.FinalAmount * withdrawal / 12),
		WithdrawalRatio: withdrawal,
	}, nil
}
