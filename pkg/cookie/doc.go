// Package cookie manages plain and HMAC-signed HTTP cookies.
//
// Signed cookies hold visitor preferences; they need a secret of at least
// 32 bytes, and without one the signed operations return [ErrNoSecret].
//
//	m := cookie.New(
//		cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//		cookie.WithSecure(true),
//	)
//	if err := m.SetSigned(w, "prefs", `{"theme":"portugal"}`, 86400*365); err != nil {
//		return err
//	}
//	raw, err := m.GetSigned(r, "prefs")
//	if errors.Is(err, cookie.ErrBadSig) {
//		// tampered; treat as absent
//	}
package cookie
