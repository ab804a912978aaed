package basen

// ConvertManual exposes the long division path so tests can compare it with
// the math/big path.
func ConvertManual(input string, from, to int) (string, error) {
	digits, err := parse(input, from)
	if err != nil {
		return "", err
	}
	return convertManual(digits, from, to), nil
}
