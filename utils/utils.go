package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"time"
)

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() string {
	rng := mrand.New(mrand.NewSource(time.Now().UnixNano()))
	otp := ""
	for i := 0; i < 6; i++ {
		otp += fmt.Sprintf("%d", rng.Intn(10))
	}
	return otp
}

// GenerateResetToken returns a 40-char hex token for password reset links
func GenerateResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// DefaultAvatarURL builds an initials avatar for a new user
func DefaultAvatarURL(firstName, lastName string) string {
	return fmt.Sprintf("https://api.dicebear.com/5.x/initials/svg?seed=%s %s", firstName, lastName)
}
