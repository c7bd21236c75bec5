package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"bioskop_tiket/config"
	"bioskop_tiket/constants"
	"bioskop_tiket/database"
	"bioskop_tiket/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.ConfigDefault("JWT_SECRET", constants.DEFAULT_JWT_SECRET))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsBcryptHash detects legacy plain-text passwords still sitting in the users
// table so login can upgrade them in place.
func IsBcryptHash(stored string) bool {
	return len(stored) == 60 && stored[:2] == "$2"
}

func GetUserByUsername(u string) (*model.User, error) {
	var user model.User
	if err := database.DB.Where(&model.User{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// GenerateToken issues the 7-day session token the frontend stores.
func GenerateToken(user *model.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = user.ID
	claims["username"] = user.Username
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(7 * 24 * time.Hour).Unix()

	return token.SignedString(JwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
}

// UsernameFromToken pulls the username claim out of a parsed token, or ""
// for guests.
func UsernameFromToken(token *jwt.Token) string {
	if token == nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if username, ok := claims["username"].(string); ok {
		return username
	}
	return ""
}
