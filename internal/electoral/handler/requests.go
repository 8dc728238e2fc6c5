package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"escrutinio/internal/electoral/models"
	id "escrutinio/pkg/domain"
	dErrors "escrutinio/pkg/domain-errors"
)

// requestValidate checks the structural shape of request bodies. Domain rules
// (uniqueness, national ID format, reconciliation) stay in the store.
var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New(validator.WithRequiredStructEnabled())
	if err := requestValidate.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	requestValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateStruct runs the tag rules and reports the first failure as a
// validation error naming the JSON field.
func validateStruct(v any) error {
	err := requestValidate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
}

type LoginRequest struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"notblank,max=128"`
}

func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}

type CandidateRequest struct {
	Name   string `json:"name" validate:"notblank,max=120"`
	Party  string `json:"party" validate:"notblank,max=120"`
	Number int    `json:"number" validate:"gte=1"`
	Color  string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Logo   string `json:"logo,omitempty" validate:"omitempty,max=524288"`
}

func (r *CandidateRequest) Normalize() {
	r.Color = strings.TrimSpace(r.Color)
}

func (r *CandidateRequest) Validate() error {
	return validateStruct(r)
}

func (r *CandidateRequest) toModel() models.CandidateRequest {
	return models.CandidateRequest{
		Name:   r.Name,
		Party:  r.Party,
		Number: r.Number,
		Color:  r.Color,
		Logo:   r.Logo,
	}
}

type TableRequest struct {
	Number      string `json:"number" validate:"notblank,max=32"`
	Locale      string `json:"locale" validate:"notblank,max=160"`
	Department  string `json:"department" validate:"max=80"`
	Province    string `json:"province" validate:"notblank,max=80"`
	District    string `json:"district" validate:"notblank,max=80"`
	TotalVoters int    `json:"total_voters" validate:"gte=1,lte=1000000"`
}

func (r *TableRequest) Validate() error {
	return validateStruct(r)
}

func (r *TableRequest) toModel() models.TableRequest {
	return models.TableRequest{
		Number:      r.Number,
		Locale:      r.Locale,
		Department:  r.Department,
		Province:    r.Province,
		District:    r.District,
		TotalVoters: r.TotalVoters,
	}
}

// AgentRequest leaves the national ID format to the store so a malformed ID
// is always reported as such.
type AgentRequest struct {
	Name       string `json:"name" validate:"notblank,max=120"`
	NationalID string `json:"national_id" validate:"notblank,max=16"`
	Password   string `json:"password" validate:"notblank,max=128"`
}

func (r *AgentRequest) Validate() error {
	return validateStruct(r)
}

func (r *AgentRequest) toModel() models.AgentRequest {
	return models.AgentRequest{
		Name:       r.Name,
		NationalID: r.NationalID,
		Password:   r.Password,
	}
}

// AssignTableRequest clears the assignment when TableID is empty.
type AssignTableRequest struct {
	TableID string `json:"table_id" validate:"max=64"`
}

func (r *AssignTableRequest) Normalize() {
	r.TableID = strings.TrimSpace(r.TableID)
}

func (r *AssignTableRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.TableID == "" {
		return nil
	}
	_, err := id.ParseTableID(r.TableID)
	return err
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted flagged validated"`
}

func (r *StatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

func (r *StatusRequest) Validate() error {
	return validateStruct(r)
}

// TallySheetRequest is an agent's submission. There is no table field: the
// table is the agent's own.
type TallySheetRequest struct {
	BlankVotes       int            `json:"blank_votes" validate:"gte=0,lte=1000000"`
	NullVotes        int            `json:"null_votes" validate:"gte=0,lte=1000000"`
	ChallengedVotes  int            `json:"challenged_votes" validate:"gte=0,lte=1000000"`
	VotesByCandidate map[string]int `json:"votes_by_candidate" validate:"dive,keys,notblank,max=64,endkeys,gte=0,lte=1000000"`
	ImageURL         string         `json:"image_url,omitempty" validate:"omitempty,max=524288"`
}

func (r *TallySheetRequest) Validate() error {
	return validateStruct(r)
}

func (r *TallySheetRequest) toModel() models.TallySheetRequest {
	votes := make(models.VotesByCandidate, len(r.VotesByCandidate))
	for k, v := range r.VotesByCandidate {
		votes[id.CandidateID(strings.TrimSpace(k))] += v
	}
	return models.TallySheetRequest{
		BlankVotes:       r.BlankVotes,
		NullVotes:        r.NullVotes,
		ChallengedVotes:  r.ChallengedVotes,
		VotesByCandidate: votes,
		ImageURL:         r.ImageURL,
	}
}
