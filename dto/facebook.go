package dto

type CreateFacebookAlbumReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage" binding:"required"`
	FacebookURL string `json:"facebookUrl" binding:"required"`
}

type CreateFacebookPhotoReq struct {
	AlbumID uint32 `json:"albumId" binding:"required"`
	URL     string `json:"url" binding:"required"`
	Caption string `json:"caption"`
}
