package controllers

import (
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
)

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Department:       user.Department,
		Campus:           user.Campus,
		Batch:            user.Batch,
		RoleType:         string(user.RoleType),
		IsVerified:       user.IsVerified,
		IsRepresentative: user.IsRepresentative,
		CreatedAt:        user.CreatedAt,
		LastLoginAt:      user.LastLoginAt,
	}
}

func toProfileResponse(user *models.User, profile *models.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		UserResponse: toUserResponse(user),
		ProfileViews: user.ProfileViews,
	}
	if profile != nil {
		resp.Bio = profile.Bio
		resp.ProfilePhotoURL = profile.ProfilePhotoURL
		resp.PhoneNumber = profile.PhoneNumber
		resp.SocialLinks = profile.SocialLinks
	}
	return resp
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{
		ID:            category.ID,
		Name:          category.Name,
		Description:   category.Description,
		BatchSpecific: category.BatchSpecific,
		Batch:         category.Batch,
		CreatedBy:     category.CreatedBy,
		CreatedAt:     category.CreatedAt,
	}
	if category.Creator != nil {
		resp.CreatedByName = category.Creator.FullName()
	}
	return resp
}

func toPhotoResponse(photo *models.Photo) dto.PhotoResponse {
	resp := dto.PhotoResponse{
		ID:          photo.ID,
		Title:       photo.Title,
		Description: photo.Description,
		ImageURL:    photo.ImageURL,
		CategoryID:  photo.CategoryID,
		PhotoType:   string(photo.PhotoType),
		UploadedBy:  photo.UploadedBy,
		IsFeatured:  photo.IsFeatured,
		IsApproved:  photo.IsApproved,
		CreatedAt:   photo.CreatedAt,
		UpdatedAt:   photo.UpdatedAt,
	}
	if photo.Category != nil {
		resp.CategoryName = photo.Category.Name
	}
	if photo.Uploader != nil {
		resp.UploadedByName = photo.Uploader.FullName()
	}
	return resp
}

func toRewardResponse(reward *models.Reward) dto.RewardResponse {
	resp := dto.RewardResponse{
		ID:                reward.ID,
		StudentName:       reward.StudentName,
		StudentDepartment: reward.StudentDepartment,
		StudentBatch:      reward.StudentBatch,
		Achievement:       reward.Achievement,
		ImageURL:          reward.ImageURL,
		AwardedBy:         reward.AwardedBy,
		CreatedAt:         reward.CreatedAt,
	}
	if reward.Awarder != nil {
		resp.AwardedByName = reward.Awarder.FullName()
	}
	return resp
}

func toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	resp := dto.DocumentResponse{
		ID:           doc.ID,
		Title:        doc.Title,
		Description:  doc.Description,
		DocumentType: string(doc.DocumentType),
		FileURL:      doc.FileURL,
		UploadedBy:   doc.UploadedBy,
		IsApproved:   doc.IsApproved,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if doc.Uploader != nil {
		resp.UploadedByName = doc.Uploader.FullName()
	}
	return resp
}

func toCommentResponse(comment *models.Comment) dto.CommentResponse {
	resp := dto.CommentResponse{
		ID:         comment.ID,
		UserID:     comment.UserID,
		Content:    comment.Content,
		TargetType: string(comment.TargetType),
		TargetID:   comment.TargetID,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
	if comment.Author != nil {
		resp.UserName = comment.Author.FullName()
		resp.UserBatch = comment.Author.Batch
	}
	return resp
}

func toRepresentativeResponse(req *models.RepresentativeRequest) dto.RepresentativeRequestResponse {
	resp := dto.RepresentativeRequestResponse{
		ID:             req.ID,
		UserID:         req.UserID,
		RequestMessage: req.RequestMessage,
		Status:         string(req.Status),
		ReviewedBy:     req.ReviewedBy,
		ReviewedAt:     req.ReviewedAt,
		AdminNotes:     req.AdminNotes,
		CreatedAt:      req.CreatedAt,
	}
	if req.Requester != nil {
		resp.UserName = req.Requester.FullName()
		resp.UserBatch = req.Requester.Batch
		resp.UserDepartment = req.Requester.Department
	}
	return resp
}
