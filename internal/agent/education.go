package agent

import (
	"context"

	"github.com/rAmIro-89/finance-assistant-bot/internal/textnorm"
)

type concept struct {
	terms []string
	reply string
}

// concepts is checked in order; the first match wins.
var concepts = []concept{
	{[]string{"inflacion"}, "📚 La inflación es el aumento generalizado de precios.\n\n" +
		"¿Qué significa?\n" +
		"• Tu dinero pierde poder de compra con el tiempo\n" +
		"• Lo que hoy cuesta $100, mañana cuesta $110\n\n" +
		"Cómo protegerte:\n" +
		"✅ Invierte tu dinero (que crezca más que la inflación)\n" +
		"✅ No guardes todo en efectivo\n" +
		"✅ Compra activos que suban con la inflación\n\n" +
		"¿Quieres saber sobre inversiones anti-inflación?"},
	{[]string{"interes"}, "📚 Tipos de interés:\n\n" +
		"🟢 Interés Simple:\n" +
		"Se calcula solo sobre el capital inicial\n" +
		"Ejemplo: $1000 al 10% anual = $100/año\n\n" +
		"🔵 Interés Compuesto (el más poderoso):\n" +
		"Se calcula sobre capital + intereses acumulados\n" +
		"Ejemplo año 1: $1000 → $1100\n" +
		"Año 2: $1100 → $1210 (no $1200)\n\n" +
		"💡 Einstein dijo: 'El interés compuesto es la fuerza más poderosa del universo'\n\n" +
		"¿Quieres calcular cuánto crecería tu inversión?"},
	{[]string{"diversificacion", "diversificar"}, "📚 Diversificación: No pongas todos los huevos en la misma canasta 🥚\n\n" +
		"¿Qué es?\n" +
		"• Repartir tu dinero en diferentes inversiones\n" +
		"• Si una baja, las otras compensan\n\n" +
		"Ejemplo básico:\n" +
		"• 40% Bonos (bajo riesgo)\n" +
		"• 40% Acciones (riesgo medio)\n" +
		"• 20% Cripto/otros (alto riesgo)\n\n" +
		"💡 Nunca dependas de una sola inversión.\n\n" +
		"¿Quieres que te ayude a armar una estrategia diversificada?"},
	{[]string{"oro"}, "📚 El Oro como Inversión 🥇\n\n" +
		"Ventajas:\n" +
		"✅ Refugio en crisis económicas\n" +
		"✅ Protección contra inflación\n" +
		"✅ Valor reconocido mundialmente\n\n" +
		"Desventajas:\n" +
		"❌ No genera intereses ni dividendos\n" +
		"❌ Costos de almacenamiento\n" +
		"❌ Volatilidad a corto plazo\n\n" +
		"Formas de invertir:\n" +
		"• Oro físico (lingotes, monedas)\n" +
		"• ETFs de oro (más líquido)\n" +
		"• Acciones mineras de oro\n\n" +
		"💡 Recomendado: 5-10% de tu portafolio en oro.\n\n" +
		"¿Te interesa saber sobre otras inversiones?"},
	{[]string{"ahorro", "ahorrar"}, "📚 Ahorro vs Inversión: ¿Cuál es la diferencia?\n\n" +
		"🏦 AHORRO:\n" +
		"• Guardar dinero sin riesgo\n" +
		"• Acceso inmediato\n" +
		"• Poco o nulo rendimiento\n" +
		"• Para emergencias y metas corto plazo\n\n" +
		"📈 INVERSIÓN:\n" +
		"• Hacer crecer tu dinero\n" +
		"• Puede tener riesgo\n" +
		"• Mayor rendimiento potencial\n" +
		"• Para metas largo plazo (5+ años)\n\n" +
		"💡 Necesitas AMBOS: Primero ahorra para emergencias, luego invierte.\n\n" +
		"¿Quieres ayuda para empezar a ahorrar o invertir?"},
	{[]string{"tarjeta", "credito"}, "📚 Tarjetas de Crédito: Cómo funcionan 💳\n\n" +
		"¿Qué es?\n" +
		"• Préstamo del banco que pagas después\n" +
		"• NO es tu dinero, es deuda\n\n" +
		"⚠️ CUIDADO con:\n" +
		"• Pagar solo el mínimo (intereses altísimos)\n" +
		"• Financiar en cuotas todo\n" +
		"• Sacar adelantos en efectivo\n\n" +
		"✅ Usa bien:\n" +
		"• Paga TODO antes del vencimiento\n" +
		"• Úsala para gastos planificados\n" +
		"• Aprovecha beneficios y puntos\n\n" +
		"💡 Si no podés pagar todo, mejor no la uses.\n\n" +
		"¿Tenés deudas en tarjeta que necesites organizar?"},
}

// Acronyms must stand alone, so "cer" does not fire on "cerca" or "cero".
var acronyms = []string{"tna", "tea", "cft", "cer", "uva"}

const acronymsReply = "📚 Siglas que vas a ver en bancos e inversiones:\n\n" +
	"• TNA: Tasa Nominal Anual, la tasa \"de cartel\"\n" +
	"• TEA: Tasa Efectiva Anual, incluye la capitalización de intereses\n" +
	"• CFT: Costo Financiero Total, tasa + comisiones + seguros + impuestos\n" +
	"• CER: índice que sigue a la inflación, lo usan los bonos CER\n" +
	"• UVA: unidad que se ajusta por inflación (créditos y plazos fijos UVA)\n\n" +
	"💡 Para comparar préstamos mirá siempre el CFT, no la TNA.\n\n" +
	"¿Querés que simulemos un préstamo o una inversión?"

const educationMenu = "🎓 Centro de Educación Financiera\n\n" +
	"Conceptos que puedo explicarte:\n\n" +
	"💹 Inflación - Cómo protegerte\n" +
	"💰 Interés simple vs compuesto\n" +
	"📊 Diversificación de inversiones\n" +
	"🥇 Oro como inversión\n" +
	"💳 Tarjetas de crédito\n" +
	"🏦 Ahorro vs inversión\n" +
	"🔤 TNA, TEA, CFT, CER y UVA\n\n" +
	"Preguntame sobre cualquiera de estos temas.\n" +
	"Por ejemplo: 'Qué es la inflación' o 'Sobre ahorro'"

func (e *Engine) handleEducation(_ context.Context, t *turn) string {
	for _, c := range concepts {
		if textnorm.HasAnyTerm(t.text, c.terms) {
			return c.reply
		}
	}
	if textnorm.HasAnyPhrase(t.text, acronyms) {
		return acronymsReply
	}
	return educationMenu
}

const helpMenu = "¡Hola! Soy tu asistente de educación financiera personal 💰\n\n" +
	"¿En qué puedo ayudarte?\n\n" +
	"📊 Presupuesto - Organiza ingresos y gastos\n" +
	"🏦 Ahorro - Metas y estrategias\n" +
	"📈 Inversiones - Guía según tu perfil\n" +
	"💳 Deudas - Planes para salir\n" +
	"🧮 Calculadora - Simuladores financieros\n" +
	"🎓 Educación - Conceptos financieros\n\n" +
	"💬 Ejemplos de lo que puedes decirme:\n" +
	"• 'Presupuesto con $50000'\n" +
	"• 'Quiero ahorrar para un auto'\n" +
	"• 'Invertir mi aguinaldo'\n" +
	"• 'Tengo deuda de $30000'\n" +
	"• 'Qué es la inflación'\n\n" +
	"Escribe tu consulta naturalmente ✨"

func (e *Engine) handleHelp(context.Context, *turn) string { return helpMenu }
