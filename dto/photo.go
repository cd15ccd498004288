package dto

type CreatePhotoReq struct {
	TeamID      uint32 `json:"teamId" binding:"required"`
	ChallengeID uint32 `json:"challengeId" binding:"required"`
	PhotoURL    string `json:"photoUrl" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=pending approved rejected"`
	Notes       string `json:"notes"`
}

type UpdatePhotoStatusReq struct {
	Status string  `json:"status" binding:"required,oneof=pending approved rejected"`
	Notes  *string `json:"notes"`
}
