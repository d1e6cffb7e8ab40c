package generation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"legaldraft-backend/internal/redaction"
	"legaldraft-backend/internal/shared/metrics"
	"legaldraft-backend/internal/shared/storage/object"
	"legaldraft-backend/internal/shared/telemetry"
	"legaldraft-backend/internal/templates"
)

// OutputFormatText is the only output format currently produced.
const OutputFormatText = "text"

// Service orchestrates document generation: template lookup, input
// validation, PII redaction, mapping storage, rendering, audit hashing
// and persistence.
type Service struct {
	Templates *templates.Service
	Engine    *redaction.Engine
	Vault     *redaction.Vault
	Repo      Repo
	Store     object.ObjectStore
	Renderer  *Renderer

	now   func() time.Time
	newID func() string
}

func NewService(tpls *templates.Service, engine *redaction.Engine, vault *redaction.Vault, repo Repo, store object.ObjectStore) *Service {
	return &Service{
		Templates: tpls,
		Engine:    engine,
		Vault:     vault,
		Repo:      repo,
		Store:     store,
		Renderer:  NewRenderer(),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// RenderParams carries one generation request. OutputFormat is recorded
// but only "text" is produced; conversion is out of scope.
type RenderParams struct {
	TemplateID   string
	Inputs       map[string]any
	OutputFormat string
}

// Render produces a document from a template and user inputs.
//
// The redaction pass and the mapping write happen before rendering, but
// the rendered text and the audit hash are both computed from the
// original inputs. The mapping is what makes the redacted view of the
// inputs reversible later; the document itself is not redacted.
func (s *Service) Render(ctx context.Context, userID string, params RenderParams) (doc GeneratedDocument, err error) {
	startedAt := time.Now()
	metrics.IncRenderStarted()
	defer func() {
		if err != nil {
			metrics.IncRenderFailed()
			return
		}
		metrics.IncRenderCompleted()
		metrics.ObserveRenderDurationMs(float64(time.Since(startedAt)) / float64(time.Millisecond))
	}()

	tpl, err := s.Templates.Get(ctx, params.TemplateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			return GeneratedDocument{}, ErrNotFound
		}
		return GeneratedDocument{}, err
	}

	inputs := params.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}

	if missing := missingRequired(tpl.Fields, inputs); len(missing) > 0 {
		return GeneratedDocument{}, &MissingFieldsError{Labels: missing}
	}

	_, mapping := s.Engine.Redact(tpl.Fields, inputs)

	mappingID, err := s.Vault.Store(ctx, userID, mapping)
	if err != nil {
		return GeneratedDocument{}, err
	}

	text, err := s.Renderer.Render(tpl.Body, inputs)
	if err != nil {
		return GeneratedDocument{}, err
	}

	outputFormat := strings.TrimSpace(params.OutputFormat)
	if outputFormat == "" {
		outputFormat = OutputFormatText
	}

	doc = GeneratedDocument{
		ID:              s.newID(),
		UserID:          userID,
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		TemplateVersion: tpl.Version,
		GeneratedText:   text,
		InputsHash:      HashInputs(inputs),
		PlaceholderKeys: placeholderKeys(mapping),
		OutputFormat:    outputFormat,
		CreatedAt:       s.now(),
	}
	if mappingID != "" {
		doc.MappingID = &mappingID
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return GeneratedDocument{}, fmt.Errorf("persist document: %w", err)
	}

	s.archive(ctx, &doc)
	return doc, nil
}

// Get returns a previously generated document owned by the user.
func (s *Service) Get(ctx context.Context, userID, docID string) (GeneratedDocument, error) {
	return s.Repo.GetByID(ctx, userID, docID)
}

// List returns the user's generated documents, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]GeneratedDocument, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// archive writes the rendered text to the object store. Failures are
// logged and swallowed: the document row is already the source of truth.
func (s *Service) archive(ctx context.Context, doc *GeneratedDocument) {
	if s.Store == nil {
		return
	}
	fileName := doc.ID + ".txt"
	storageKey, _, _, err := s.Store.Save(ctx, doc.UserID, fileName, strings.NewReader(doc.GeneratedText))
	if err != nil {
		telemetry.Warn("generation.archive_failed", map[string]any{"document_id": doc.ID, "error": err.Error()})
		return
	}
	if err := s.Repo.SetStorageKey(ctx, doc.ID, storageKey); err != nil {
		telemetry.Warn("generation.storage_key_update_failed", map[string]any{"document_id": doc.ID, "error": err.Error()})
		return
	}
	doc.StorageKey = &storageKey
}

// missingRequired collects labels of required fields whose input is
// absent, nil, or a blank string, in declaration order.
func missingRequired(fields []templates.Field, inputs map[string]any) []string {
	var missing []string
	for _, f := range fields {
		if !f.Required {
			continue
		}
		value, ok := inputs[f.Name]
		if ok && value != nil {
			if str, isString := value.(string); !isString || strings.TrimSpace(str) != "" {
				continue
			}
		}
		label := f.Label
		if label == "" {
			label = f.Name
		}
		missing = append(missing, label)
	}
	return missing
}

func placeholderKeys(mapping redaction.Mapping) []string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	// Stable order for storage and responses.
	sort.Strings(keys)
	return keys
}
