package dataset

import (
	"hoadash/internal/core"
	"hoadash/internal/i18n"
)

type finding struct {
	severity       core.Severity
	category       i18n.Text
	title          i18n.Text
	description    i18n.Text
	recommendation i18n.Text
	amount         string
	isUSD          bool
}

// Findings returns the forensic findings of the 2023 review resolved to lang.
// Every call builds a new slice.
func Findings(lang i18n.Language) []core.Finding {
	src := findings2023()
	out := make([]core.Finding, 0, len(src))
	for _, f := range src {
		out = append(out, core.Finding{
			Severity:       f.severity,
			Category:       f.category.In(lang),
			Title:          f.title.In(lang),
			Description:    f.description.In(lang),
			Recommendation: f.recommendation.In(lang),
			Amount:         amt(f.amount),
			IsUSD:          f.isUSD,
		})
	}
	return out
}

func findings2023() []finding {
	budgetVariance := i18n.Text{EN: "Budget Variance", ES: "Variación Presupuestal"}
	positiveVariance := i18n.Text{EN: "Positive Variance", ES: "Variación Positiva"}

	return []finding{
		{
			severity: core.SeverityHigh,
			category: budgetVariance,
			title: i18n.Text{
				EN: "Other Expenses exceeded budget by 246%",
				ES: "Otros Gastos excedieron el presupuesto en 246%",
			},
			description: i18n.Text{
				EN: "Other expenses totaled $345,845 MXN against a budget of $100,000 MXN. This $245,845 overrun requires detailed itemization and justification.",
				ES: "Los otros gastos totalizaron $345,845 MXN contra un presupuesto de $100,000 MXN. Este exceso de $245,845 requiere desglose detallado y justificación.",
			},
			recommendation: i18n.Text{
				EN: `Request detailed breakdown of all items categorized as "Other Expenses". Establish stricter expense categorization policies.`,
				ES: `Solicitar desglose detallado de todos los conceptos categorizados como "Otros Gastos". Establecer políticas más estrictas de categorización de gastos.`,
			},
			amount: "-245845.19",
		},
		{
			severity: core.SeverityHigh,
			category: i18n.Text{EN: "Cash Flow", ES: "Flujo de Efectivo"},
			title: i18n.Text{
				EN: "Significant accounts receivable concentration",
				ES: "Concentración significativa de cuentas por cobrar",
			},
			description: i18n.Text{
				EN: "Unit 1105 owes $21,452.81 USD (70% of total A/R), including $19,960 in HOA fees and $1,050 in extraordinary fees. This concentration risk threatens cash flow stability.",
				ES: "La Unidad 1105 debe $21,452.81 USD (70% del total de C×C), incluyendo $19,960 en cuotas HOA y $1,050 en cuotas extraordinarias. Este riesgo de concentración amenaza la estabilidad del flujo de efectivo.",
			},
			recommendation: i18n.Text{
				EN: "Implement immediate collection procedures for Unit 1105. Consider legal action or late fee penalties per HOA bylaws.",
				ES: "Implementar procedimientos de cobranza inmediata para la Unidad 1105. Considerar acción legal o penalizaciones por mora según los estatutos del HOA.",
			},
			amount: "21452.81",
			isUSD:  true,
		},
		{
			severity: core.SeverityMedium,
			category: i18n.Text{EN: "Operating Loss", ES: "Pérdida Operativa"},
			title: i18n.Text{
				EN: "Net operating loss of $769,200 MXN",
				ES: "Pérdida operativa neta de $769,200 MXN",
			},
			description: i18n.Text{
				EN: "Total expenses exceeded income by $769,200 MXN (9.4% deficit). The organization spent more than it earned despite being budgeted for a surplus.",
				ES: "Los gastos totales excedieron los ingresos por $769,200 MXN (déficit del 9.4%). La organización gastó más de lo que ganó a pesar de tener presupuestado un superávit.",
			},
			recommendation: i18n.Text{
				EN: "Review fee structure adequacy. Consider extraordinary assessment or dues increase for 2024.",
				ES: "Revisar la adecuación de la estructura de cuotas. Considerar una cuota extraordinaria o aumento de cuotas para 2024.",
			},
			amount: "-769200",
		},
		{
			severity: core.SeverityMedium,
			category: budgetVariance,
			title: i18n.Text{
				EN: "January and July expenses significantly over budget",
				ES: "Gastos de Enero y Julio significativamente sobre presupuesto",
			},
			description: i18n.Text{
				EN: "January exceeded budget by $597,720 (88% over) primarily due to insurance premium timing. July exceeded by $447,200 (60% over) due to insurance and irregular expenses.",
				ES: "Enero excedió el presupuesto por $597,720 (88% arriba) principalmente por el momento del pago de la póliza de seguro. Julio excedió por $447,200 (60% arriba) debido al seguro y gastos irregulares.",
			},
			recommendation: i18n.Text{
				EN: "Adjust monthly budget to reflect insurance payment timing. Smooth large payments across fiscal year.",
				ES: "Ajustar el presupuesto mensual para reflejar el momento de pago del seguro. Distribuir pagos grandes a lo largo del año fiscal.",
			},
			amount: "-1044920",
		},
		{
			severity: core.SeverityMedium,
			category: i18n.Text{EN: "Maintenance", ES: "Mantenimiento"},
			title: i18n.Text{
				EN: "Elevator maintenance 27% over budget",
				ES: "Mantenimiento de elevador 27% sobre presupuesto",
			},
			description: i18n.Text{
				EN: "Elevator maintenance costs reached $207,945 vs $180,000 budget. Recurring unplanned repairs suggest equipment aging or maintenance quality issues.",
				ES: "Los costos de mantenimiento del elevador alcanzaron $207,945 vs $180,000 presupuestados. Las reparaciones recurrentes no planificadas sugieren envejecimiento del equipo o problemas de calidad de mantenimiento.",
			},
			recommendation: i18n.Text{
				EN: "Evaluate elevator service contract. Consider equipment assessment and potential capital improvement reserve.",
				ES: "Evaluar el contrato de servicio del elevador. Considerar una evaluación del equipo y una potencial reserva para mejoras de capital.",
			},
			amount: "-27945.02",
		},
		{
			severity: core.SeverityMedium,
			category: i18n.Text{EN: "Utilities", ES: "Servicios"},
			title: i18n.Text{
				EN: "Electricity costs 8.4% over budget",
				ES: "Costos de electricidad 8.4% sobre presupuesto",
			},
			description: i18n.Text{
				EN: "Electricity expenses totaled $368,918 against $340,200 budget. Consistent overage suggests rates increased or consumption grew.",
				ES: "Los gastos de electricidad totalizaron $368,918 contra $340,200 presupuestados. El exceso consistente sugiere que las tarifas aumentaron o el consumo creció.",
			},
			recommendation: i18n.Text{
				EN: "Conduct energy audit of common areas. Evaluate LED upgrades and timer systems for lights.",
				ES: "Realizar auditoría energética de áreas comunes. Evaluar actualización a LED y sistemas de temporizadores para luces.",
			},
			amount: "-28718",
		},
		{
			severity: core.SeverityLow,
			category: positiveVariance,
			title: i18n.Text{
				EN: "Payroll under budget by $687,219",
				ES: "Nómina bajo presupuesto por $687,219",
			},
			description: i18n.Text{
				EN: "Personnel costs were 14% under budget, saving significant funds. May indicate understaffing or vacant positions.",
				ES: "Los costos de personal estuvieron 14% bajo presupuesto, ahorrando fondos significativos. Puede indicar falta de personal o posiciones vacantes.",
			},
			recommendation: i18n.Text{
				EN: "Verify staffing levels meet operational needs. Reallocate savings to cover other overages.",
				ES: "Verificar que los niveles de personal cumplan con las necesidades operativas. Reasignar ahorros para cubrir otros excesos.",
			},
			amount: "687219.47",
		},
		{
			severity: core.SeverityLow,
			category: positiveVariance,
			title: i18n.Text{
				EN: "Bank fees significantly under budget",
				ES: "Comisiones bancarias significativamente bajo presupuesto",
			},
			description: i18n.Text{
				EN: "Bank commissions totaled $116,460 against $180,000 budget - 35% savings.",
				ES: "Las comisiones bancarias totalizaron $116,460 contra $180,000 presupuestados - 35% de ahorro.",
			},
			recommendation: i18n.Text{
				EN: "Continue current banking arrangements. Bank fee savings can offset other variances.",
				ES: "Continuar con los arreglos bancarios actuales. Los ahorros en comisiones pueden compensar otras variaciones.",
			},
			amount: "63540.11",
		},
		{
			severity: core.SeverityInfo,
			category: i18n.Text{EN: "Balance Sheet", ES: "Balance General"},
			title: i18n.Text{
				EN: "Strong liquidity position despite operating loss",
				ES: "Posición de liquidez sólida a pesar de pérdida operativa",
			},
			description: i18n.Text{
				EN: "Cash and bank balances of $2.19M MXN with quick ratio of approximately 2.2. Organization can meet short-term obligations.",
				ES: "Saldo en efectivo y bancos de $2.19M MXN con razón rápida de aproximadamente 2.2. La organización puede cumplir con obligaciones a corto plazo.",
			},
			recommendation: i18n.Text{
				EN: "Maintain reserves while addressing collection of receivables and expense control.",
				ES: "Mantener reservas mientras se atiende la cobranza de cuentas por cobrar y el control de gastos.",
			},
			amount: "2191119.19",
		},
		{
			severity: core.SeverityInfo,
			category: i18n.Text{EN: "Compliance", ES: "Cumplimiento"},
			title: i18n.Text{
				EN: "Tax compliant - No ISR due",
				ES: "Cumplimiento fiscal - Sin ISR a pagar",
			},
			description: i18n.Text{
				EN: "As a non-profit (AC), the organization properly filed Form F21 with no tax liability due to fiscal loss.",
				ES: "Como asociación civil (AC), la organización presentó correctamente el formulario F21 sin responsabilidad fiscal debido a la pérdida fiscal.",
			},
			recommendation: i18n.Text{
				EN: "Maintain documentation of fiscal loss for potential future offset against positive results.",
				ES: "Mantener documentación de la pérdida fiscal para posible compensación futura contra resultados positivos.",
			},
			amount: "0",
		},
	}
}
