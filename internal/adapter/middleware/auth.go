package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"loanbook/internal/domain/user"
)

// PrincipalContextKey is where the auth middleware stores the caller.
const PrincipalContextKey = "principal"

// JWTAuth verifies an HMAC bearer token, loads the subject from the user
// store and attaches a Principal to the echo context. Profile ids are
// resolved here once so downstream code never touches the user tables.
func JWTAuth(secret []byte, users user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			raw = strings.TrimPrefix(raw, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing sub claim"})
			}

			ctx := c.Request().Context()
			u, err := users.GetByUserID(ctx, sub)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown user"})
			}

			p := user.Principal{UserID: u.UserID, Role: u.Role}
			if u.Role == user.RoleProvider {
				if prov, err := users.GetProviderByUserID(ctx, u.UserID); err == nil {
					p.ProviderID = prov.ProviderID
				}
			}
			// bank personnel may also hold a customer profile, which lets
			// them pay against their own loans
			if u.Role == user.RoleCustomer || u.Role == user.RoleBank {
				if cust, err := users.GetCustomerByUserID(ctx, u.UserID); err == nil {
					p.CustomerID = cust.CustomerID
				}
			}

			c.Set(PrincipalContextKey, p)
			return next(c)
		}
	}
}
