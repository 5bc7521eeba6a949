package datetime

import "fmt"

/*
Format renders tp as an ISO-8601-like extended timestamp,
"YYYY-MM-DDThh:mm:ss[.fractional] SCALE", with fractionalDigits digits of
sub-second precision (clamped to [0, 9]). This is deliberately one fixed
layout rather than a template language; general-purpose formatting is not
this library's concern.
*/
func Format[S TimeScale, R Representation, U Unit](tp TimePoint[S, R, U], fractionalDigits int) (string, error) {
	if fractionalDigits < 0 {
		fractionalDigits = 0
	}
	if fractionalDigits > 9 {
		fractionalDigits = 9
	}

	date, hour, minute, second, sub, err := ToSubsecondDatetime[S, R, U, int64, NanoSecond](tp)
	if err != nil {
		return "", err
	}

	result := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		date.Year(), uint8(date.Month()), date.Day(), hour, minute, second)

	if fractionalDigits > 0 {
		scale := int64(1)
		for i := 0; i < 9-fractionalDigits; i++ {
			scale *= 10
		}
		result += fmt.Sprintf(".%0*d", fractionalDigits, sub.Count()/scale)
	}

	var s S
	return result + " " + s.Name(), nil
}
