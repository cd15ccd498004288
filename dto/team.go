package dto

import "strings"

type CreateTeamReq struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Captain string `json:"captain" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Score   *int   `json:"score"`
	Logo    string `json:"logo"`
}

// Normalize trims the identifying fields; the access code is compared
// verbatim everywhere else, so stray whitespace must not survive creation.
func (r *CreateTeamReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	r.Captain = strings.TrimSpace(r.Captain)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

type UpdateScoreReq struct {
	Score *int `json:"score" binding:"required"`
}
