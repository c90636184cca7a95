package controllerImp

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"simpupuk/pkg/auth/controller"
)

const masaBerlakuToken = 12 * time.Hour

type authCtrl struct {
	user   string
	pass   string // bcrypt hash, or plain for dev setups
	secret string
}

func NewAuthController(user, pass, secret string) controller.AuthController {
	return &authCtrl{user: user, pass: pass, secret: secret}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authCtrl) cocok(password string) bool {
	if strings.HasPrefix(h.pass, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(h.pass), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(h.pass), []byte(password)) == 1
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "json tidak valid"})
	}
	if req.Username != h.user || !h.cocok(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "username atau password salah"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"exp": time.Now().Add(masaBerlakuToken).Unix(),
	})
	signed, err := token.SignedString([]byte(h.secret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": signed})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	user, _ := c.Get("user").(string)
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}
