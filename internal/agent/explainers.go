package agent

const goldExplainer = "🟡 **ORO como inversión**\n\n" +
	"✅ **Ventajas:**\n" +
	"• Refugio de valor en crisis económicas\n" +
	"• Protección contra inflación y devaluación\n" +
	"• Liquidez global (se vende en cualquier lado)\n" +
	"• Diversificación de portafolio\n\n" +
	"❌ **Desventajas:**\n" +
	"• No genera rendimiento (dividendos/intereses)\n" +
	"• Costos de almacenamiento si es físico\n" +
	"• Puede ser volátil a corto plazo\n\n" +
	"💰 **Formas de invertir:**\n" +
	"1. **ETFs/CEDEARs de oro** (GLD, IAU) - Lo más práctico\n" +
	"2. **Oro físico** (lingotes, monedas) - Control total pero caro\n" +
	"3. **Acciones de mineras** - Mayor riesgo pero potencial de ganancia\n\n" +
	"📊 **Recomendación:**\n" +
	"• 5-10% del portafolio en oro como protección\n" +
	"• Mejor en ETFs que físico (más líquido y seguro)\n" +
	"• Complementa con plata, dólar y otros activos\n\n" +
	"¿Querés más info sobre cómo comprar ETFs de oro o sobre otros activos?"

const silverExplainer = "⚪ **PLATA como inversión**\n\n" +
	"✅ **Ventajas:**\n" +
	"• Similar al oro pero más accesible\n" +
	"• Uso industrial (electrónica, solar) = demanda real\n" +
	"• Históricamente sube más que oro en bull markets\n\n" +
	"❌ **Desventajas:**\n" +
	"• MÁS volátil que el oro\n" +
	"• Menos líquida\n" +
	"• Ocupan más espacio si es físico\n\n" +
	"💰 **Formas de invertir:**\n" +
	"1. **ETFs de plata** (SLV, PSLV)\n" +
	"2. **Plata física** (monedas, lingotes pequeños)\n" +
	"3. **Ratio oro/plata** - Históricamente 60:1\n\n" +
	"📊 **Recomendación:**\n" +
	"• 3-5% del portafolio\n" +
	"• Cuando ratio oro/plata > 80, la plata está barata\n" +
	"• Más especulativa que oro\n\n" +
	"¿Querés info sobre dólar, cripto u otros activos?"

const dollarExplainer = "💵 **DÓLAR como inversión**\n\n" +
	"✅ **Ventajas:**\n" +
	"• Protección contra devaluación del peso\n" +
	"• Moneda de reserva mundial\n" +
	"• Alta liquidez\n\n" +
	"❌ **Desventajas:**\n" +
	"• Pierde valor con inflación de USA (~2-3% anual)\n" +
	"• No genera rendimiento si está \"bajo el colchón\"\n" +
	"• Riesgo de confiscación/restricciones (corralito)\n\n" +
	"💰 **Alternativas que SÍ rinden:**\n" +
	"1. **Plazo fijo en USD** - 1-3% anual\n" +
	"2. **Bonos USA** (Treasury) - 4-5% anual, muy seguro\n" +
	"3. **Stablecoins** (USDT, USDC) - 5-10% en DeFi\n" +
	"4. **Dólar MEP/CCL** - Compra legal en Argentina\n\n" +
	"📊 **Recomendación:**\n" +
	"• Tener 20-30% del patrimonio en dólares\n" +
	"• NO dejarlos ociosos: invertir en bonos o plazo fijo USD\n" +
	"• Diversificar: físico + digital + bonos\n\n" +
	"💡 **Mejor opción hoy:** Dólar MEP → Bonos Treasury en USD\n\n" +
	"¿Querés que te explique cómo comprar bonos en dólares?"

const usdBondsExplainer = "🇺🇸 **Cómo comprar bonos en dólares**\n\n" +
	"1. **Abrí una cuenta en un broker** (ALyC habilitada por la CNV)\n" +
	"2. **Comprá dólar MEP** desde la misma cuenta, de forma legal\n" +
	"3. **Elegí el bono:**\n" +
	"   • Bonos del Tesoro de USA vía ETF (SHV, BIL, TLT como CEDEAR)\n" +
	"   • Obligaciones negociables (ON) de empresas, pagan en USD\n" +
	"   • Bonos soberanos en USD: más rendimiento, más riesgo\n" +
	"4. **Revisá vencimiento y cupón:** cuándo pagan y cuánto\n\n" +
	"📊 **Recomendación:**\n" +
	"• Empezá con ON de empresas sólidas o ETFs de Treasuries\n" +
	"• Repartí en varios vencimientos\n" +
	"• No pongas todo en bonos de un solo emisor\n\n" +
	"¿Querés que simulemos cuánto rendiría un monto en dólares?"

const cryptoExplainer = "₿ **CRIPTOMONEDAS como inversión**\n\n" +
	"⚠️ **ADVERTENCIA: Alto riesgo, alta volatilidad**\n\n" +
	"✅ **Ventajas:**\n" +
	"• Potencial de crecimiento exponencial\n" +
	"• Descentralización (no controlado por gobiernos)\n" +
	"• Liquidez 24/7\n" +
	"• Protección contra inflación (Bitcoin: supply limitado)\n\n" +
	"❌ **Desventajas:**\n" +
	"• Puede caer 50-80% en meses\n" +
	"• Riesgo de hackeo si no guardas bien\n" +
	"• Regulación incierta\n" +
	"• Muy técnico para principiantes\n\n" +
	"💰 **Principales criptos:**\n" +
	"1. **Bitcoin (BTC)** - \"Oro digital\", la más segura\n" +
	"2. **Ethereum (ETH)** - Plataforma de contratos inteligentes\n" +
	"3. **Stablecoins** (USDT, USDC) - Dólar digital\n" +
	"4. Resto: MUCHO más riesgo\n\n" +
	"📊 **Recomendación:**\n" +
	"• Solo invierte lo que estés dispuesto a PERDER\n" +
	"• Máximo 5-10% del portafolio\n" +
	"• 70% BTC + 30% ETH (si sos principiante)\n" +
	"• Nunca dejar en exchanges, usar wallet propia\n\n" +
	"🔐 **5 Reglas de Oro:**\n" +
	"1. DCA (Dollar Cost Averaging): compra de a poco\n" +
	"2. HODL: no vendas en pánico\n" +
	"3. Wallet propia (Ledger, Trezor)\n" +
	"4. Nunca compartas tu seed phrase\n" +
	"5. Diversifica: BTC + ETH + stablecoins\n\n" +
	"¿Querés que te explique cómo empezar con poco monto?"

const stocksExplainer = "📈 **ACCIONES como inversión**\n\n" +
	"✅ **Ventajas:**\n" +
	"• Potencial de crecimiento a largo plazo\n" +
	"• Participación en empresas exitosas\n" +
	"• Dividendos (ingresos pasivos)\n" +
	"• Protección contra inflación\n\n" +
	"❌ **Desventajas:**\n" +
	"• Volatilidad alta\n" +
	"• Requiere conocimiento y análisis\n" +
	"• Riesgo de pérdida de capital\n\n" +
	"💰 **Opciones en Argentina:**\n" +
	"1. **Acciones argentinas** (YPF, GGAL, PAMP)\n" +
	"   • Muy volátil por riesgo país\n" +
	"   • Dividendos en pesos\n\n" +
	"2. **CEDEARs** (Apple, Tesla, Amazon)\n" +
	"   • Acceso a empresas extranjeras\n" +
	"   • En pesos pero siguen al dólar\n" +
	"   • Liquidez en Argentina\n\n" +
	"3. **ETFs globales** (S&P 500, Nasdaq)\n" +
	"   • Diversificación automática (500 empresas)\n" +
	"   • Menor riesgo que acciones individuales\n" +
	"   • Recomendado para principiantes\n\n" +
	"📊 **Recomendación:**\n" +
	"• Principiantes: ETF S&P 500 (SPY, VOO)\n" +
	"• Intermedio: 70% ETF + 30% acciones individuales\n" +
	"• Avanzado: Stock picking + análisis fundamental\n\n" +
	"💡 **Portfolio balanceado:**\n" +
	"• 50% ETFs globales\n" +
	"• 30% CEDEARs (empresas conocidas)\n" +
	"• 20% Bonos/Plazo fijo (colchón)\n\n" +
	"¿Querés que te explique cómo abrir cuenta en broker y empezar?"

const fixedTermExplainer = "🏦 **PLAZO FIJO como inversión**\n\n" +
	"✅ **Ventajas:**\n" +
	"• 100% seguro (garantía estatal hasta $30M)\n" +
	"• Predecible (sabes cuánto vas a ganar)\n" +
	"• Fácil de hacer (cualquier banco)\n" +
	"• No requiere conocimiento financiero\n\n" +
	"❌ **Desventajas:**\n" +
	"• Rendimiento bajo (apenas le gana a inflación)\n" +
	"• Dinero bloqueado (penalización si sacas antes)\n" +
	"• En pesos: pierdes si hay devaluación fuerte\n" +
	"• Costo de oportunidad (otras inversiones rinden más)\n\n" +
	"📊 **Tasas actuales (aprox):**\n" +
	"• Plazo fijo tradicional: 40-50% TNA (~35% después de impuestos)\n" +
	"• Plazo fijo UVA: inflación + 1% (protege contra inflación)\n" +
	"• Plazo fijo en USD: 1-3% anual\n\n" +
	"💡 **Mejores alternativas:**\n" +
	"1. **FCI Money Market** - Misma seguridad, liquidez diaria\n" +
	"2. **Bonos CER** - Ajusta por inflación, más líquido\n" +
	"3. **Letras del Tesoro** - Mayor rendimiento, similar seguridad\n" +
	"4. **Plazo fijo UVA** - Si querés plazo fijo, que ajuste por inflación\n\n" +
	"📊 **Recomendación:**\n" +
	"• Plazo fijo: solo para fondo emergencia (liquidez inmediata)\n" +
	"• Mejor opción: 50% FCI + 30% Bonos CER + 20% Plazo fijo\n" +
	"• Si vas a plazo fijo, elegir UVA (mín 90 días)\n\n" +
	"¿Querés que te explique cómo invertir en fondos o bonos?"
