package user

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func TestGetUserIDFromCtx(t *testing.T) {
	app := fiber.New()
	app.Use(HeaderIdentity())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := GetUserIDFromCtx(c)
		if err != nil {
			return Unauthorized(c)
		}
		return c.SendString(strconv.Itoa(id))
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/whoami", nil)
	req2.Header.Set("X-User-ID", "42")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with identity, got %d", res2.StatusCode)
	}
}

func TestGetUserIDFromCtx_ClaimTypes(t *testing.T) {
	cases := []struct {
		claim interface{}
		want  int
		ok    bool
	}{
		{float64(7), 7, true},
		{"12", 12, true},
		{int64(3), 3, true},
		{"abc", 0, false},
		{float64(0), 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		app := fiber.New()
		var got int
		var gotErr error
		app.Get("/", func(c *fiber.Ctx) error {
			c.Locals(LocalsKey, &jwt.Token{Claims: jwt.MapClaims{"user_id": tc.claim}})
			got, gotErr = GetUserIDFromCtx(c)
			return nil
		})
		if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if tc.ok && (gotErr != nil || got != tc.want) {
			t.Fatalf("claim %v: expected %d, got %d (%v)", tc.claim, tc.want, got, gotErr)
		}
		if !tc.ok && gotErr == nil {
			t.Fatalf("claim %v: expected error", tc.claim)
		}
	}
}

func TestJWT(t *testing.T) {
	app := fiber.New()
	app.Use(JWT("test-secret"))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := GetUserIDFromCtx(c)
		if err != nil {
			return Unauthorized(c)
		}
		return c.SendString(strconv.Itoa(id))
	})

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with a bad token, got %d", res.StatusCode)
	}
}
