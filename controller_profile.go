package devconnect

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// ProfileController serves the developer profile endpoints, including the
// embedded experience and education records and full account deletion.
type ProfileController struct {
	Debug      bool
	Logger     Logger
	Repo       RepositoryManager
	ContextKey string
}

type ProfileControllerOption func(*ProfileController) *ProfileController

func NewProfileController(opts ...ProfileControllerOption) *ProfileController {
	c := &ProfileController{
		Logger:     defLogger{},
		ContextKey: "user",
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in profile controller...")
	}

	return c
}

// RegisterRoutes mounts the profile endpoints. Listing and the per user
// lookup are public, everything else requires a token.
func (a *ProfileController) RegisterRoutes(api RouteRegistrar, protected router.MiddlewareFunc) {
	api.Get("/profile/me", a.Me, protected)
	api.Post("/profile", a.Upsert, protected)
	api.Get("/profile", a.List)
	api.Get("/profile/user/:user_id", a.GetByUser)
	api.Delete("/profile", a.DeleteAccount, protected)
	api.Put("/profile/experience", a.AddExperience, protected)
	api.Delete("/profile/experience/:exp_id", a.RemoveExperience, protected)
	api.Put("/profile/education", a.AddEducation, protected)
	api.Delete("/profile/education/:edu_id", a.RemoveEducation, protected)
}

// ProfilePayload is the create or update body. Skills arrive as a comma
// separated string and are split server side.
type ProfilePayload struct {
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// Validate will run validation rules
func (r ProfilePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("Status is required")),
		validation.Field(&r.Skills, validation.Required.Error("Skills is required")),
	)
}

// ExperiencePayload is the body for adding an experience record
type ExperiencePayload struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Validate will run validation rules
func (r ExperiencePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Company, validation.Required.Error("Company is required")),
		validation.Field(&r.From, validation.Required.Error("From date is required")),
	)
}

// EducationPayload is the body for adding an education record
type EducationPayload struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Validate will run validation rules
func (r EducationPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.School, validation.Required.Error("School is required")),
		validation.Field(&r.Degree, validation.Required.Error("Degree is required")),
		validation.Field(&r.FieldOfStudy, validation.Required.Error("Field of study is required")),
		validation.Field(&r.From, validation.Required.Error("From date is required")),
	)
}

// Me returns the caller's own profile
func (a *ProfileController) Me(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	profile, err := a.Repo.Profiles().GetByUserID(ctx.Context(), uid.String())
	if err != nil {
		if goerrors.Is(err, ErrProfileNotFound) {
			return RespondError(ctx, ErrNoProfileForUser)
		}
		a.Logger.Error("profile me", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// Upsert creates the caller's profile or merges the supplied fields into it
func (a *ProfileController) Upsert(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	payload := new(ProfilePayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("profile parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	if a.Debug {
		fmt.Println("======= PROFILE ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("======================")
	}

	incoming := &Profile{
		UserID:         uid,
		Status:         payload.Status,
		Skills:         SplitSkills(payload.Skills),
		Company:        payload.Company,
		Website:        payload.Website,
		Location:       payload.Location,
		Bio:            payload.Bio,
		GithubUsername: payload.GithubUsername,
		Social: SocialLinks{
			Youtube:   payload.Youtube,
			Twitter:   payload.Twitter,
			Facebook:  payload.Facebook,
			Linkedin:  payload.Linkedin,
			Instagram: payload.Instagram,
		},
	}

	profile, err := a.Repo.Profiles().Upsert(ctx.Context(), incoming)
	if err != nil {
		a.Logger.Error("profile upsert", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// List returns every profile with owner name and avatar populated
func (a *ProfileController) List(ctx router.Context) error {
	profiles, err := a.Repo.Profiles().List(ctx.Context())
	if err != nil {
		a.Logger.Error("profile list", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profiles)
}

// GetByUser returns the profile owned by the given user id
func (a *ProfileController) GetByUser(ctx router.Context) error {
	userID := ctx.Param("user_id")

	profile, err := a.Repo.Profiles().GetByUserID(ctx.Context(), userID)
	if err != nil {
		if !goerrors.Is(err, ErrProfileNotFound) {
			a.Logger.Error("profile by user", "user_id", userID, "error", err)
		}
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// DeleteAccount removes the caller's posts, profile, and account
func (a *ProfileController) DeleteAccount(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	deleteAccount := NewDeleteAccountHandler(a.Repo)
	if err := deleteAccount.Execute(ctx.Context(), DeleteAccountMessage{UserID: uid}); err != nil {
		a.Logger.Error("delete account", "user_id", uid, "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]string{
		"msg": "User deleted",
	})
}

// AddExperience prepends an experience record to the caller's profile
func (a *ProfileController) AddExperience(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	payload := new(ExperiencePayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("experience parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	profile, err := a.Repo.Profiles().AddExperience(ctx.Context(), uid, Experience{
		Title:       payload.Title,
		Company:     payload.Company,
		Location:    payload.Location,
		From:        payload.From,
		To:          payload.To,
		Current:     payload.Current,
		Description: payload.Description,
	})
	if err != nil {
		a.Logger.Error("add experience", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// RemoveExperience deletes the experience record with the given id
func (a *ProfileController) RemoveExperience(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	profile, err := a.Repo.Profiles().RemoveExperience(ctx.Context(), uid, ctx.Param("exp_id"))
	if err != nil {
		a.Logger.Error("remove experience", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// AddEducation prepends an education record to the caller's profile
func (a *ProfileController) AddEducation(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	payload := new(EducationPayload)
	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("education parse payload", "error", err)
		return RespondValidationError(ctx, err)
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	profile, err := a.Repo.Profiles().AddEducation(ctx.Context(), uid, Education{
		School:       payload.School,
		Degree:       payload.Degree,
		FieldOfStudy: payload.FieldOfStudy,
		From:         payload.From,
		To:           payload.To,
		Current:      payload.Current,
		Description:  payload.Description,
	})
	if err != nil {
		a.Logger.Error("add education", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

// RemoveEducation deletes the education record with the given id
func (a *ProfileController) RemoveEducation(ctx router.Context) error {
	uid, err := a.currentUserID(ctx)
	if err != nil {
		return RespondError(ctx, err)
	}

	profile, err := a.Repo.Profiles().RemoveEducation(ctx.Context(), uid, ctx.Param("edu_id"))
	if err != nil {
		a.Logger.Error("remove education", "error", err)
		return RespondError(ctx, err)
	}

	return ctx.JSON(router.StatusOK, profile)
}

func (a *ProfileController) currentUserID(ctx router.Context) (uuid.UUID, error) {
	claims, ok := GetRouterClaims(ctx, a.ContextKey)
	if !ok {
		return uuid.Nil, ErrNoToken
	}

	uid, err := uuid.Parse(claims.UserID())
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}

	return uid, nil
}

// SplitSkills turns the comma separated skills string into trimmed entries,
// dropping empties.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
