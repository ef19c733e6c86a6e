package domain

import "time"

// Roles stored in users.rol. Only RoleAdmin passes the admin guard;
// client-side role checks are display hints, never authorization.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID              string    `db:"id" json:"id"`
	Username        string    `db:"kullanici_adi" json:"kullanici_adi"`
	Email           string    `db:"email" json:"email"`
	PasswordHash    string    `db:"sifre_hash" json:"-"`
	Credits         float64   `db:"kredi" json:"kredi"`
	Role            string    `db:"rol" json:"rol"`
	Badge           string    `db:"yetki" json:"yetki"`
	BadgeImage      *string   `db:"yetki_gorseli" json:"yetki_gorseli"`
	Bio             string    `db:"biyografi" json:"biyografi"`
	ProfileBackdrop *string   `db:"profil_arka_plani" json:"profil_arka_plani"`
	ActiveThemeID   *string   `db:"aktif_tema_id" json:"aktif_tema_id"`
	BirthDate       string    `db:"dogum_tarihi" json:"dogum_tarihi,omitempty"`
	RegisteredAt    time.Time `db:"kayit_tarihi" json:"kayit_tarihi"`
}

// PublicView strips fields that must not leave the server on public
// profile lookups.
func (u *User) PublicView() map[string]any {
	return map[string]any{
		"id":                u.ID,
		"kullanici_adi":     u.Username,
		"kredi":             u.Credits,
		"rol":               u.Role,
		"yetki":             u.Badge,
		"yetki_gorseli":     u.BadgeImage,
		"biyografi":         u.Bio,
		"profil_arka_plani": u.ProfileBackdrop,
		"aktif_tema_id":     u.ActiveThemeID,
		"kayit_tarihi":      u.RegisteredAt,
	}
}
