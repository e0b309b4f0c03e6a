package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloatOrZero converte uma string numérica em float64.
// Valores vazios ou inválidos viram 0, nunca erro.
func ParseFloatOrZero(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return f
}

// ParseIntOrZero converte uma string numérica em int.
// Valores vazios ou inválidos viram 0, nunca erro.
func ParseIntOrZero(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return i
}
