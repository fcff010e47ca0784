package devconnect_test

import (
	"testing"

	"github.com/goliatone/devconnect"
	"github.com/stretchr/testify/assert"
)

func TestRegisterPayloadValidate(t *testing.T) {
	valid := devconnect.RegisterPayload{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	t.Run("accepts valid payload", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("requires name", func(t *testing.T) {
		p := valid
		p.Name = ""
		err := p.Validate()
		assert.Error(t, err)
		assert.Contains(t, devconnect.FormatValidationErrorToMap(err), "name")
	})

	t.Run("requires a valid email", func(t *testing.T) {
		p := valid
		p.Email = "not-an-email"
		err := p.Validate()
		assert.Error(t, err)
		assert.Contains(t, devconnect.FormatValidationErrorToMap(err), "email")
	})

	t.Run("requires at least 6 password characters", func(t *testing.T) {
		p := valid
		p.Password = "short"
		assert.Error(t, p.Validate())
	})

	t.Run("accepts a valid phone number", func(t *testing.T) {
		p := valid
		p.Phone = "+1 650-253-0000"
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects garbage phone numbers", func(t *testing.T) {
		p := valid
		p.Phone = "not-a-phone"
		assert.Error(t, p.Validate())
	})
}

func TestLoginPayloadValidate(t *testing.T) {
	t.Run("accepts valid payload", func(t *testing.T) {
		p := devconnect.LoginPayload{Email: "test@example.com", Password: "password123"}
		assert.NoError(t, p.Validate())
	})

	t.Run("requires email and password", func(t *testing.T) {
		err := devconnect.LoginPayload{}.Validate()
		assert.Error(t, err)

		fields := devconnect.FormatValidationErrorToMap(err)
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})
}

func TestProfilePayloadValidate(t *testing.T) {
	t.Run("requires status and skills", func(t *testing.T) {
		err := devconnect.ProfilePayload{}.Validate()
		assert.Error(t, err)

		fields := devconnect.FormatValidationErrorToMap(err)
		assert.Contains(t, fields, "status")
		assert.Contains(t, fields, "skills")
	})

	t.Run("accepts minimal payload", func(t *testing.T) {
		p := devconnect.ProfilePayload{Status: "Developer", Skills: "Go, SQL"}
		assert.NoError(t, p.Validate())
	})
}

func TestExperiencePayloadValidate(t *testing.T) {
	t.Run("requires title company and from", func(t *testing.T) {
		err := devconnect.ExperiencePayload{}.Validate()
		assert.Error(t, err)

		fields := devconnect.FormatValidationErrorToMap(err)
		assert.Contains(t, fields, "title")
		assert.Contains(t, fields, "company")
		assert.Contains(t, fields, "from")
	})

	t.Run("accepts complete payload", func(t *testing.T) {
		p := devconnect.ExperiencePayload{
			Title:   "Developer",
			Company: "Acme",
			From:    "2020-01-01",
			Current: true,
		}
		assert.NoError(t, p.Validate())
	})
}

func TestEducationPayloadValidate(t *testing.T) {
	t.Run("requires school degree fieldofstudy and from", func(t *testing.T) {
		err := devconnect.EducationPayload{}.Validate()
		assert.Error(t, err)

		fields := devconnect.FormatValidationErrorToMap(err)
		assert.Contains(t, fields, "school")
		assert.Contains(t, fields, "degree")
		assert.Contains(t, fields, "fieldofstudy")
		assert.Contains(t, fields, "from")
	})
}

func TestPostPayloadValidate(t *testing.T) {
	t.Run("requires text", func(t *testing.T) {
		err := devconnect.PostPayload{}.Validate()
		assert.Error(t, err)
	})

	t.Run("accepts text", func(t *testing.T) {
		assert.NoError(t, devconnect.PostPayload{Text: "hello world"}.Validate())
	})
}

func TestSplitSkills(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Go", "SQL", "Docker"},
			devconnect.SplitSkills("Go, SQL ,Docker"),
		)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		assert.Equal(t, []string{"Go"}, devconnect.SplitSkills("Go,, ,"))
	})

	t.Run("empty input yields no skills", func(t *testing.T) {
		assert.Empty(t, devconnect.SplitSkills(""))
	})
}

func TestValidatePhoneNumber(t *testing.T) {
	assert.NoError(t, devconnect.ValidatePhoneNumber(""))
	assert.NoError(t, devconnect.ValidatePhoneNumber("+1 650-253-0000"))
	assert.Error(t, devconnect.ValidatePhoneNumber("123"))
	assert.Error(t, devconnect.ValidatePhoneNumber("not-a-phone"))
}
