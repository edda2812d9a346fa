package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyppr/models"
)

type stubModel struct {
	output string
	err    error
	// captured inputs of the last call
	instruction string
	prompt      string
}

func (m *stubModel) GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error) {
	m.instruction = systemInstruction
	m.prompt = prompt
	return m.output, m.err
}

func testBusiness() models.Business {
	return models.Business{
		ID:       "biz_1",
		Name:     "Serenity Now Yoga",
		Type:     models.TypeYogaStudio,
		Address:  "123 Wellness Way",
		Zipcode:  "10001",
		Timezone: "America/New_York",
		Services: []models.Service{
			{
				Name:            "Vinyasa Flow",
				DurationMinutes: 60,
				WeeklySchedule:  []models.ScheduleEntry{{Day: "Monday", Time: "09:00"}},
			},
		},
	}
}

func newTestService(model ModelClient) *DefaultAssistantService {
	return &DefaultAssistantService{
		Model: model,
		Now:   func() time.Time { return time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC) },
	}
}

func TestInterpret_ValidResponseWithCommentary(t *testing.T) {
	model := &stubModel{output: "Here you go:\n" + `{
		"operation": "LIST_SERVICES",
		"role": "user",
		"status": "success",
		"response": {"assistant_reply": "We offer Vinyasa Flow.", "services": [{"name": "Vinyasa Flow", "duration_minutes": 60, "category": "Yoga"}]}
	}` + "\nHope that helps!"}
	svc := newTestService(model)

	resp := svc.Interpret(context.Background(), "what do you offer?", models.RoleCustomer, testBusiness(), nil)

	require.NotNil(t, resp)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, models.OpListServices, resp.Operation)
	require.NotNil(t, resp.Response)
	assert.Equal(t, "We offer Vinyasa Flow.", resp.Response.AssistantReply)
}

func TestInterpret_TransportFailureFallsBack(t *testing.T) {
	model := &stubModel{err: errors.New("connection reset")}
	svc := newTestService(model)

	resp := svc.Interpret(context.Background(), "hello", models.RoleCustomer, testBusiness(), nil)

	require.NotNil(t, resp)
	assert.Equal(t, "failure", resp.Status)
	assert.Equal(t, models.OpAssist, resp.Operation)
	assert.Nil(t, resp.Request)
	require.NotNil(t, resp.Business)
	assert.Equal(t, "biz_1", resp.Business.ID)
	require.NotNil(t, resp.Response)
	assert.NotEmpty(t, resp.Response.AssistantReply)
	assert.NotEmpty(t, resp.Response.Errors)
	assert.Empty(t, resp.Response.ClarifyingQuestions)
}

func TestInterpret_NoJSONFallsBack(t *testing.T) {
	model := &stubModel{output: "I am just chatting, no structure here."}
	svc := newTestService(model)

	resp := svc.Interpret(context.Background(), "hello", models.RoleCustomer, testBusiness(), nil)

	assert.Equal(t, "failure", resp.Status)
	assert.Equal(t, models.OpAssist, resp.Operation)
	assert.Empty(t, resp.Response.ClarifyingQuestions)
}

func TestInterpret_SchemaViolationAsksToRephrase(t *testing.T) {
	// Valid JSON, but the mandatory response bag is null.
	model := &stubModel{output: `{"operation": "ASSIST", "status": "success", "response": null}`}
	svc := newTestService(model)

	resp := svc.Interpret(context.Background(), "hello", models.RoleBusinessOwner, testBusiness(), nil)

	assert.Equal(t, "failure", resp.Status)
	assert.Equal(t, "business_owner", resp.Role)
	require.NotNil(t, resp.Response)
	assert.NotEmpty(t, resp.Response.ClarifyingQuestions)
}

func TestInterpret_FallbackAlwaysPassesOwnContract(t *testing.T) {
	model := &stubModel{err: errors.New("boom")}
	svc := newTestService(model)

	resp := svc.Interpret(context.Background(), "hello", models.RoleCustomer, testBusiness(), nil)
	assert.NoError(t, ValidateResponse(resp))
}

func TestInterpret_PromptCarriesSlotsAndMessage(t *testing.T) {
	model := &stubModel{err: errors.New("short-circuit")}
	svc := newTestService(model)

	svc.Interpret(context.Background(), "book me in", models.RoleCustomer, testBusiness(), nil)

	assert.Contains(t, model.prompt, "book me in")
	assert.Contains(t, model.prompt, "Vinyasa Flow")
	assert.Contains(t, model.instruction, "response")
}

func TestInterpret_RoleSelectsInstructionSet(t *testing.T) {
	model := &stubModel{err: errors.New("short-circuit")}
	svc := newTestService(model)

	svc.Interpret(context.Background(), "hi", models.RoleCustomer, testBusiness(), nil)
	customerInstr := model.instruction
	svc.Interpret(context.Background(), "hi", models.RoleBusinessOwner, testBusiness(), nil)
	ownerInstr := model.instruction

	assert.NotEqual(t, customerInstr, ownerInstr)
}
