package service

const (
	MaxSummaryYears = 5 // años reportados en el resumen de intereses

	// saldo por debajo del cual un período se considera liquidación final
	payoffTolerance = 1e-6

	// Límite de (1+r)^n: por encima, la cuota nivelada se redondea a P·r
	// y la amortización de capital se pierde en el redondeo
	MaxCompoundGrowth = 1e8
)
