package intent

import (
	"regexp"
	"strings"

	"github.com/rAmIro-89/finance-assistant-bot/internal/convo"
	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

// educationTriggers are explanation-seeking phrases. They are matched as
// whole phrases and win over every later stage.
var educationTriggers = []string{
	"que es", "que son", "que significa", "que significan",
	"como funciona", "como funcionan",
	"explicar", "explicame", "explica", "explicarme", "explicas", "podrias explicar",
	"significa", "quiere decir",
	"aprender", "ensename", "ensenar", "ensenarme",
	"no entiendo", "concepto de", "diferencia entre",
}

// calculatorPatterns signal an explicit computation request.
var calculatorPatterns = compilePatterns([]string{
	`\bcuanto (ganaria|ganare|rinde|rinden|rendiria|obtendria|me daria)\b`,
	`\bsi invierto\b`,
	`\binteres compuesto\b`,
	`\bsimul(a|ar|ame|emos|acion|ador)\b.*\b(prestamo|credito|inversion|plazo fijo|interes|cuota)`,
	`\bcuota (de|del|para) (un |una |mi )?(prestamo|credito|\$?\d)`,
	`\ben cuanto tiempo (pago|termino|salgo|cancelo|saldo|liquido)\b`,
	`\bcomparar (opciones|inversiones|instrumentos)\b`,
	`\bjubil(acion|arme|arse|o)\b.*\d`,
})

// savingsPhrases are colloquial ways of saying "I want to save".
var savingsPhrases = []string{
	"ahorrar plata", "ahorrar dinero",
	"juntar plata", "juntar dinero", "juntar guita",
	"guardar plata", "guardar dinero",
	"fondo de emergencia",
	"viajar", "vacaciones", "europa", "viaje a",
}

var purchasePhrases = []string{
	"planeo comprar", "planear la compra", "planear compra", "planificar la compra",
	"quiero comprar", "voy a comprar", "pienso comprar", "comprarme",
}

var goodsTerms = []string{
	"casa", "departamento", "depto", "vivienda", "terreno",
	"auto", "coche", "moto", "camioneta", "bici",
	"viaje", "heladera", "celular", "computadora", "notebook", "televisor", "tele",
}

// amountWhatNow matches "tengo $X, ¿qué hago?".
var amountWhatNow = regexp.MustCompile(
	`\d[\d.,]*\s*(lucas|pesos|mil|dolares|usd)?[\s,.;¿?!]*(y\s+)?(que|q)\s+(hago|puedo hacer|me conviene hacer)\b`)

type scenarioTerms struct {
	scenario convo.Scenario
	terms    []string
}

// directKeywords is checked in declaration order; the first scenario with a
// matching keyword wins.
var directKeywords = []scenarioTerms{
	{convo.Investment, []string{
		"invertir", "inversion", "aguinaldo", "oro", "gold", "plata", "silver",
		"dolar", "dollar", "cripto", "crypto", "bitcoin", "btc", "ethereum", "eth",
		"acciones", "accion", "stock", "bolsa", "plazo fijo", "cedear", "rinde mas",
	}},
	{convo.Budget, []string{"presupuesto", "organizar gastos", "distribuir ingresos", "gano", "ingreso"}},
	{convo.Savings, []string{"ahorrar", "ahorro", "alcancia"}},
	{convo.Debt, []string{"deuda", "prestamo", "tarjeta", "credito", "debo", "pagar cuota"}},
	{convo.Education, []string{"que es", "como funciona", "explicar", "explicame", "ensenar", "aprender"}},
	{convo.Calculator, []string{"calculadora", "calcular"}},
}

var confirmationWords = map[string]bool{
	"si": true, "no": true, "dale": true, "ok": true, "okay": true, "bueno": true,
	"claro": true, "genial": true, "perfecto": true, "listo": true, "sale": true,
	"de una": true, "obvio": true, "va": true,
}

var pureNumber = regexp.MustCompile(`^\$?\s*\d[\d\s.,]*$`)

var hasDigit = regexp.MustCompile(`\d`)

// goalNouns are savings goals a user may answer with a single word.
var goalNouns = map[string]bool{
	"casa": true, "vivienda": true, "departamento": true, "depto": true, "hogar": true,
	"auto": true, "carro": true, "coche": true, "vehiculo": true, "moto": true, "camioneta": true,
	"viaje": true, "vacaciones": true, "vacacionar": true, "conocer": true,
	"emergencia": true, "emergencias": true, "fondo": true,
	"boda": true, "casamiento": true, "matrimonio": true,
	"estudios": true, "universidad": true, "maestria": true, "curso": true,
}

// wordMap covers one and two word inputs, including plural and verb forms.
var wordMap = map[string]convo.Scenario{
	"presupuesto": convo.Budget, "presupuestos": convo.Budget, "gastos": convo.Budget, "sueldo": convo.Budget,
	"ahorro": convo.Savings, "ahorrar": convo.Savings, "ahorros": convo.Savings,
	"inversion": convo.Investment, "inversiones": convo.Investment, "invertir": convo.Investment,
	"fci": convo.Investment, "etf": convo.Investment, "etfs": convo.Investment, "bonos": convo.Investment,
	"deuda": convo.Debt, "deudas": convo.Debt, "prestamo": convo.Debt, "prestamos": convo.Debt,
	"educacion": convo.Education, "aprender": convo.Education, "inflacion": convo.Education,
	"cer": convo.Education, "tna": convo.Education, "tea": convo.Education, "cft": convo.Education, "uva": convo.Education,
	"calculadora": convo.Calculator, "calcular": convo.Calculator, "simular": convo.Calculator,
	"simulador": convo.Calculator, "jubilacion": convo.Calculator,
}

var stopWords = map[string]bool{
	"el": true, "la": true, "los": true, "las": true, "un": true, "una": true,
	"de": true, "del": true, "al": true, "para": true, "por": true, "con": true,
	"en": true, "a": true, "y": true, "o": true, "pero": true, "que": true,
	"mi": true, "me": true, "te": true, "lo": true, "su": true, "sus": true,
	"se": true, "si": true, "no": true, "es": true, "son": true, "muy": true,
	"mas": true, "como": true, "cuando": true, "donde": true, "quien": true, "cual": true,
}

// scoringOrder is the declaration order used to break score ties.
var scoringOrder = []convo.Scenario{
	convo.Budget, convo.Savings, convo.Investment, convo.Debt, convo.Education, convo.Calculator,
}

var scoringKeywords = map[convo.Scenario][]string{
	convo.Budget: {
		"presupuesto", "gastos", "ingresos", "planificar", "organizar", "dinero",
		"cuanto gasto", "administrar", "controlar", "distribuir", "plata",
		"sueldo", "salario", "cobro", "pago", "cuanto tengo", "alcanza",
		"economia domestica", "finanzas personales", "mis cuentas",
	},
	convo.Savings: {
		"ahorrar", "ahorro", "ahorros", "guardar", "meta", "objetivo", "juntar", "reservar",
		"quiero comprar", "necesito", "voy a comprar", "planeo", "juntando",
		"guardando", "economizar", "separar", "alcancia",
	},
	convo.Investment: {
		"invertir", "inversion", "inversiones", "acciones", "bonos",
		"plazo fijo", "crypto", "criptomonedas", "fondos", "donde pongo",
		"rentabilidad", "ganar", "multiplicar", "hacer crecer", "rendimiento",
		"que me conviene", "mejor opcion", "aguinaldo", "sueldo anual",
		"bonus", "prima", "cedear", "etf", "fci", "tasa", "aporte",
	},
	convo.Debt: {
		"deuda", "deudas", "prestamo", "credito", "tarjeta",
		"cuota", "intereses", "debo", "pagar", "prestan", "financiacion",
		"adeudo", "cancelar", "saldar", "cuotas", "mensualidades", "banco",
		"me atrase", "no puedo pagar", "refinanciar",
	},
	convo.Education: {
		"aprender", "ensenar", "explicar", "que es", "como funciona",
		"no entiendo", "concepto", "significa", "quiere decir", "ayuda a entender",
		"me gustaria saber", "quisiera saber", "podrías explicar",
		"curso", "tutorial", "ensenanza",
	},
	convo.Calculator: {
		"calcular", "calcula", "cuanto", "simular", "simulador",
		"en cuanto tiempo", "cuota", "plazo", "rendimiento", "comparar",
		"dame numeros", "hazme cuentas", "sacame la cuenta",
	},
}

var intentPatterns = map[convo.Scenario][]string{
	convo.Budget: {
		"cobro", "gano", "tengo de sueldo", "ingreso", "me pagan",
		"cuanto me alcanza", "llegando a fin de mes", "no me alcanza",
	},
	convo.Savings: {
		"quiero comprar", "voy a comprar", "necesito juntar", "me gustaria tener",
		"planear para", "meta de", "objetivo de", "en cuanto tiempo",
	},
	convo.Investment: {
		"donde poner", "que hago con", "me conviene", "recomendas",
		"mejor manera de", "opciones para", "puedo hacer con",
	},
	convo.Debt: {
		"me quedan", "estoy pagando", "no puedo pagar", "atrasado con",
		"cuotas de", "banco me", "tarjeta me cobra",
	},
}

// boostTriggers nudge weak educational phrasing during scoring.
var boostTriggers = []string{
	"que es", "como funciona", "explicar", "explicame", "ensenar", "aprender", "sobre", "acerca de",
}

var (
	debtHints    = []string{"debo", "deb", "pagar", "cuota"}
	savingsHints = []string{"quiero", "comprar", "juntar", "necesito"}
)

var longNumber = regexp.MustCompile(`\d{5,}`)

var questionWords = map[string]bool{
	"que": true, "como": true, "porque": true, "significa": true,
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

// keyword is a scoring keyword prepared once for matching.
type keyword struct {
	text  string
	words []string
}

func prepareKeywords(in map[convo.Scenario][]string) map[convo.Scenario][]keyword {
	out := make(map[convo.Scenario][]keyword, len(in))
	for sc, list := range in {
		for _, k := range list {
			n := textnorm.Normalize(k)
			out[sc] = append(out[sc], keyword{text: n, words: strings.Fields(n)})
		}
	}
	return out
}

var preparedKeywords = prepareKeywords(scoringKeywords)
