package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/rAmIro-89/finance-assistant-bot/internal/calc"
)

// FileName is the definitions file looked up inside the definitions dir.
const FileName = "bot.yaml"

type Classifier struct {
	FuzzyThreshold float64 `yaml:"fuzzy_threshold" validate:"gt=0,lte=1"`
}

type Investment struct {
	DefaultRate float64 `yaml:"default_rate" validate:"gt=0"`
}

type Calculator struct {
	DefaultYears      float64 `yaml:"default_years" validate:"gt=0"`
	DefaultLoanRate   float64 `yaml:"default_loan_rate" validate:"gte=0"`
	DefaultLoanMonths int     `yaml:"default_loan_months" validate:"gt=0"`
	CompareTop        int     `yaml:"compare_top" validate:"gt=0"`
	// MaxYears bounds every horizon the calculators simulate.
	MaxYears int `yaml:"max_years" validate:"gt=0"`
}

type Retirement struct {
	DefaultRate    float64 `yaml:"default_rate" validate:"gt=0"`
	SafeWithdrawal float64 `yaml:"safe_withdrawal" validate:"gt=0,lt=1"`
}

type Limits struct {
	MaxMessageLen int `yaml:"max_message_len" validate:"gt=0"`
}

type Config struct {
	Classifier  Classifier        `yaml:"classifier"`
	Investment  Investment        `yaml:"investment"`
	Calculator  Calculator        `yaml:"calculator"`
	Retirement  Retirement        `yaml:"retirement"`
	Instruments []calc.Instrument `yaml:"instruments" validate:"min=1,dive"`
	Limits      Limits            `yaml:"limits"`
}

// Default returns the built-in definitions.
func Default() *Config {
	return &Config{
		Classifier: Classifier{FuzzyThreshold: 0.85},
		Investment: Investment{DefaultRate: 12},
		Calculator: Calculator{
			DefaultYears:      5,
			DefaultLoanRate:   50,
			DefaultLoanMonths: 12,
			CompareTop:        5,
			MaxYears:          50,
		},
		Retirement:  Retirement{DefaultRate: 12, SafeWithdrawal: 0.04},
		Instruments: append([]calc.Instrument(nil), calc.DefaultInstruments...),
		Limits:      Limits{MaxMessageLen: 2000},
	}
}

// LoadFromDir reads base/bot.yaml over the defaults and validates the result.
func LoadFromDir(base string) (*Config, error) {
	path := filepath.Join(base, FileName)
	errb := oops.In("config").With("path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errb.Wrapf(err, "leyendo definiciones")
	}

	// Keys missing from the file keep the values of Default.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errb.Wrapf(err, "parseando %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errb.Wrapf(err, "validando %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}
