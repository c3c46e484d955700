package shlemiel

// Coefficients are listed from the constant term up:
// coefficients[i] multiplies x^i.

// EvaluatePolynomialShlemiel recomputes x^i from scratch for every term.
func EvaluatePolynomialShlemiel(coefficients []float64, x float64) float64 {
	sum := 0.0
	for i, c := range coefficients {
		term := c
		for j := 0; j < i; j++ {
			term *= x
		}
		sum += term
	}

	return sum
}

// EvaluatePolynomialLinear carries the running power of x between terms.
func EvaluatePolynomialLinear(coefficients []float64, x float64) float64 {
	sum, power := 0.0, 1.0
	for _, c := range coefficients {
		sum += c * power
		power *= x
	}

	return sum
}

// EvaluatePolynomialHorner uses Horner's rule: one multiply and one add per
// coefficient, from the highest degree down.
func EvaluatePolynomialHorner(coefficients []float64, x float64) float64 {
	sum := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		sum = sum*x + coefficients[i]
	}

	return sum
}
