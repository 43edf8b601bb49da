package textnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"Qué es la Inflación":       "que es la inflacion",
		"quiero_ahorrar":            "quiero ahorrar",
		"corto-plazo":               "corto plazo",
		"  muchos   espacios \t\n ": "muchos espacios",
		"AÑOS":                      "anos",
		"¿Cómo funciona?":           "¿como funciona?",
		"$50.000":                   "$50.000",
	}
	for in, want := range cases {
		require.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Qué es la inflación",
		"Invertir_mi-AGUINALDO",
		"  Ñandú  ÜBER  ",
		"cobro 350 lucas",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestTokens(t *testing.T) {
	require.Equal(t, []string{"pago", "10000", "por", "mes"}, Tokens("Pago 10000  por MES"))
	require.Empty(t, Tokens("   "))
}

func TestHasTerm(t *testing.T) {
	require.True(t, HasTerm("compro oro fisico", "oro"))
	require.False(t, HasTerm("el tesoro", "oro"))
	require.True(t, HasTerm("tengo deudas", "deuda"))
	require.False(t, HasTerm("una transaccion", "accion"))
	require.True(t, HasTerm("¿que es el cer?", "que es"))
	require.True(t, HasTerm("tesoro y oro", "oro"))
	require.False(t, HasTerm("algo", ""))

	require.True(t, HasPhrase("¿que es el cer?", "que es"))
	require.True(t, HasPhrase("que es", "que es"))
	require.False(t, HasPhrase("que estas haciendo", "que es"))
	require.False(t, HasPhrase("porque es caro", "que es"))
	require.True(t, HasAnyPhrase("me lo explicas?", []string{"explicame", "explicas"}))

	require.True(t, HasAnyTerm("me gusta el bitcoin", []string{"eth", "bitcoin"}))
	require.False(t, HasAnyTerm("nada", []string{"eth", "bitcoin"}))
}
