package token

// IsInt reports whether v has the form -?[0-9]+.
func IsInt(v string) bool {
	d := v
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	n := asciiDigits(d)
	return n > 0 && n == len(d)
}

// IsFloat reports whether v has the form -?[0-9]+\.[0-9]+.
func IsFloat(v string) bool {
	d := v
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	n := asciiDigits(d)
	if n == 0 || n == len(d) || d[n] != '.' {
		return false
	}
	d = d[n+1:]
	f := asciiDigits(d)
	return f > 0 && f == len(d)
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
