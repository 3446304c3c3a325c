package validators

import (
	"net/url"
	"regexp"
)

var (
	postalcodeRe = regexp.MustCompile(`^\d{5}$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsPostalcode accepts exactly five digits, the Thai postal format.
func IsPostalcode(s string) bool {
	return postalcodeRe.MatchString(s)
}

func IsPhoneNumber(s string) bool {
	return digitsRe.MatchString(s)
}

// IsPictureURL checks the value parses as an absolute http(s) URL. It says
// nothing about whether the image actually exists.
func IsPictureURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
