package problemgen

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// AnswerTolerance is the absolute tolerance for decimal answers. A decimal
// is accepted iff |value - answer| < AnswerTolerance.
const AnswerTolerance = 1e-4

var fractionPattern = regexp.MustCompile(`^([+-]?\d+)/(\d+)$`)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Rules:
// - Input containing "/" is parsed as an exact fraction and compared exactly
//   (equivalent fractions are accepted, e.g. "2/14" matches 1/7)
// - Any other input is parsed as a decimal and accepted within AnswerTolerance
// - Surrounding whitespace is ignored
// - Anything that fails to parse, including a zero denominator, is incorrect
func CheckAnswer(learnerAnswer string, correct Answer) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)

	if strings.Contains(learnerAnswer, "/") {
		r, err := parseFraction(learnerAnswer)
		if err != nil {
			return false
		}
		return correct.Equal(r)
	}

	f, err := parseDecimal(learnerAnswer)
	if err != nil {
		return false
	}
	return math.Abs(f-correct.Float64()) < AnswerTolerance
}

// parseFraction parses "a/b" into an exact rational. Only the numerator may
// carry a sign.
func parseFraction(s string) (*big.Rat, error) {
	m := fractionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, ok := new(big.Int).SetString(m[1], 10)
	if !ok {
		return nil, fmt.Errorf("invalid numerator: %q", m[1])
	}
	den, ok := new(big.Int).SetString(m[2], 10)
	if !ok {
		return nil, fmt.Errorf("invalid denominator: %q", m[2])
	}
	if den.Sign() == 0 {
		return nil, fmt.Errorf("zero denominator")
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// parseDecimal parses a finite decimal number. Hex floats are rejected and
// single underscores between digits are allowed, e.g. "0.142_857".
func parseDecimal(s string) (float64, error) {
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, fmt.Errorf("invalid decimal: %q", s)
	}
	s, err := stripDigitSeparators(s)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return f, nil
}

// stripDigitSeparators removes underscores that sit between two digits.
func stripDigitSeparators(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			sb.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", fmt.Errorf("invalid digit separator in %q", s)
		}
	}
	return sb.String(), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
