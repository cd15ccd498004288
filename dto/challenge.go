package dto

import "strings"

type CreateChallengeReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	CoordsLat   string `json:"coordsLat" binding:"required"`
	CoordsLng   string `json:"coordsLng" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=défi photo"`
	Points      *int   `json:"points"`
}

func (r *CreateChallengeReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.CoordsLat = strings.TrimSpace(r.CoordsLat)
	r.CoordsLng = strings.TrimSpace(r.CoordsLng)
}
