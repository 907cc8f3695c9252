package graph

import (
	"errors"
	"strings"

	"github.com/causeconnect-dev/causeconnect/internal/auth"
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/graphql-go/graphql"
	"gorm.io/gorm"
)

func (s *Schema) resolveSignUpUser(p graphql.ResolveParams) (interface{}, error) {
	email, err := stringArg(p, "email")
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	fullName, err := stringArg(p, "full_name")
	if err != nil {
		return nil, err
	}

	password, err := stringArg(p, "password")
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if value, ok := optionalStringArg(p, "role"); ok && value != "" {
		role = models.Role(value)
	}

	input := signUpInput{
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     role,
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	_, err = s.stores.Users.GetByEmail(email)
	if err == nil {
		return nil, badInput("User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internalError(err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, internalError(err)
	}

	profilePicture, _ := optionalStringArg(p, "profile_picture")
	phone, _ := optionalStringArg(p, "phone")

	user := &models.User{
		Email:          email,
		PasswordHash:   passwordHash,
		FullName:       fullName,
		Role:           role,
		ProfilePicture: profilePicture,
		Phone:          phone,
	}

	if err := s.stores.Users.Create(user); err != nil {
		// Two concurrent signups can both pass the pre-check; the unique
		// index on email settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badInput("User already exists")
		}
		return nil, internalError(err)
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, internalError(err)
	}

	return &AuthPayload{User: user, Token: token}, nil
}

func (s *Schema) resolveLoginUser(p graphql.ResolveParams) (interface{}, error) {
	email, err := stringArg(p, "email")
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	password, err := stringArg(p, "password")
	if err != nil {
		return nil, err
	}

	if err := validateInput(loginInput{Email: email, Password: password}); err != nil {
		return nil, err
	}

	user, err := s.stores.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User")
		}
		return nil, internalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, badInput("Incorrect password")
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, internalError(err)
	}

	return &AuthPayload{User: user, Token: token}, nil
}

func (s *Schema) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if id != user.ID {
		return nil, ErrNotAuthorized
	}

	updates := make(map[string]interface{})

	if fullName, ok := optionalStringArg(p, "full_name"); ok && strings.TrimSpace(fullName) != "" {
		updates["full_name"] = strings.TrimSpace(fullName)
	}
	if profilePicture, ok := optionalStringArg(p, "profile_picture"); ok {
		updates["profile_picture"] = profilePicture
	}
	if phone, ok := optionalStringArg(p, "phone"); ok {
		updates["phone"] = phone
	}
	if description, ok := optionalStringArg(p, "description"); ok {
		updates["description"] = description
	}

	account, err := s.stores.Users.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User")
		}
		return nil, internalError(err)
	}

	return account, nil
}

func (s *Schema) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if id != user.ID {
		return nil, ErrNotAuthorized
	}

	if _, err := s.stores.Users.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User")
		}
		return nil, internalError(err)
	}

	if err := s.stores.Users.Delete(id); err != nil {
		return nil, internalError(err)
	}

	return true, nil
}
