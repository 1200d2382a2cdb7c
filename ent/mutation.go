// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-ai/tarsy/ent/event"
	"github.com/tarsy-ai/tarsy/ent/llminteraction"
	"github.com/tarsy-ai/tarsy/ent/mcpinteraction"
	"github.com/tarsy-ai/tarsy/ent/predicate"
	"github.com/tarsy-ai/tarsy/ent/session"
	"github.com/tarsy-ai/tarsy/ent/stageexecution"
	"github.com/tarsy-ai/tarsy/ent/warning"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent          = "Event"
	TypeLLMInteraction = "LLMInteraction"
	TypeMCPInteraction = "MCPInteraction"
	TypeSession        = "Session"
	TypeStageExecution = "StageExecution"
	TypeWarning        = "Warning"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int64
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// LLMInteractionMutation represents an operation that mutates the LLMInteraction nodes in the graph.
type LLMInteractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	provider               *string
	model_name             *string
	temperature            *float64
	addtemperature         *float64
	interaction_type       *llminteraction.InteractionType
	conversation           *[]map[string]interface{}
	appendconversation     []map[string]interface{}
	native_tools_config    *map[string]interface{}
	start_time_us          *int64
	addstart_time_us       *int64
	end_time_us            *int64
	addend_time_us         *int64
	duration_ms            *int
	addduration_ms         *int
	timestamp_us           *int64
	addtimestamp_us        *int64
	success                *bool
	error_message          *string
	input_tokens           *int
	addinput_tokens        *int
	output_tokens          *int
	addoutput_tokens       *int
	total_tokens           *int
	addtotal_tokens        *int
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	stage_execution        *string
	clearedstage_execution bool
	done                   bool
	oldValue               func(context.Context) (*LLMInteraction, error)
	predicates             []predicate.LLMInteraction
}

var _ ent.Mutation = (*LLMInteractionMutation)(nil)

// llminteractionOption allows management of the mutation configuration using functional options.
type llminteractionOption func(*LLMInteractionMutation)

// newLLMInteractionMutation creates new mutation for the LLMInteraction entity.
func newLLMInteractionMutation(c config, op Op, opts ...llminteractionOption) *LLMInteractionMutation {
	m := &LLMInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMInteractionID sets the ID field of the mutation.
func withLLMInteractionID(id string) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMInteraction
		)
		m.oldValue = func(ctx context.Context) (*LLMInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMInteraction sets the old LLMInteraction of the mutation.
func withLLMInteraction(node *LLMInteraction) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		m.oldValue = func(context.Context) (*LLMInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMInteraction entities.
func (m *LLMInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *LLMInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LLMInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LLMInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetStageExecutionID sets the "stage_execution_id" field.
func (m *LLMInteractionMutation) SetStageExecutionID(s string) {
	m.stage_execution = &s
}

// StageExecutionID returns the value of the "stage_execution_id" field in the mutation.
func (m *LLMInteractionMutation) StageExecutionID() (r string, exists bool) {
	v := m.stage_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldStageExecutionID returns the old "stage_execution_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldStageExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageExecutionID: %w", err)
	}
	return oldValue.StageExecutionID, nil
}

// ResetStageExecutionID resets all changes to the "stage_execution_id" field.
func (m *LLMInteractionMutation) ResetStageExecutionID() {
	m.stage_execution = nil
}

// SetProvider sets the "provider" field.
func (m *LLMInteractionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMInteractionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMInteractionMutation) ResetProvider() {
	m.provider = nil
}

// SetModelName sets the "model_name" field.
func (m *LLMInteractionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMInteractionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMInteractionMutation) ResetModelName() {
	m.model_name = nil
}

// SetTemperature sets the "temperature" field.
func (m *LLMInteractionMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *LLMInteractionMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *LLMInteractionMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *LLMInteractionMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *LLMInteractionMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[llminteraction.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *LLMInteractionMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *LLMInteractionMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, llminteraction.FieldTemperature)
}

// SetInteractionType sets the "interaction_type" field.
func (m *LLMInteractionMutation) SetInteractionType(lt llminteraction.InteractionType) {
	m.interaction_type = &lt
}

// InteractionType returns the value of the "interaction_type" field in the mutation.
func (m *LLMInteractionMutation) InteractionType() (r llminteraction.InteractionType, exists bool) {
	v := m.interaction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionType returns the old "interaction_type" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldInteractionType(ctx context.Context) (v llminteraction.InteractionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionType: %w", err)
	}
	return oldValue.InteractionType, nil
}

// ResetInteractionType resets all changes to the "interaction_type" field.
func (m *LLMInteractionMutation) ResetInteractionType() {
	m.interaction_type = nil
}

// SetConversation sets the "conversation" field.
func (m *LLMInteractionMutation) SetConversation(value []map[string]interface{}) {
	m.conversation = &value
	m.appendconversation = nil
}

// Conversation returns the value of the "conversation" field in the mutation.
func (m *LLMInteractionMutation) Conversation() (r []map[string]interface{}, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversation returns the old "conversation" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldConversation(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversation: %w", err)
	}
	return oldValue.Conversation, nil
}

// AppendConversation adds value to the "conversation" field.
func (m *LLMInteractionMutation) AppendConversation(value []map[string]interface{}) {
	m.appendconversation = append(m.appendconversation, value...)
}

// AppendedConversation returns the list of values that were appended to the "conversation" field in this mutation.
func (m *LLMInteractionMutation) AppendedConversation() ([]map[string]interface{}, bool) {
	if len(m.appendconversation) == 0 {
		return nil, false
	}
	return m.appendconversation, true
}

// ResetConversation resets all changes to the "conversation" field.
func (m *LLMInteractionMutation) ResetConversation() {
	m.conversation = nil
	m.appendconversation = nil
}

// SetNativeToolsConfig sets the "native_tools_config" field.
func (m *LLMInteractionMutation) SetNativeToolsConfig(value map[string]interface{}) {
	m.native_tools_config = &value
}

// NativeToolsConfig returns the value of the "native_tools_config" field in the mutation.
func (m *LLMInteractionMutation) NativeToolsConfig() (r map[string]interface{}, exists bool) {
	v := m.native_tools_config
	if v == nil {
		return
	}
	return *v, true
}

// OldNativeToolsConfig returns the old "native_tools_config" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldNativeToolsConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNativeToolsConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNativeToolsConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNativeToolsConfig: %w", err)
	}
	return oldValue.NativeToolsConfig, nil
}

// ClearNativeToolsConfig clears the value of the "native_tools_config" field.
func (m *LLMInteractionMutation) ClearNativeToolsConfig() {
	m.native_tools_config = nil
	m.clearedFields[llminteraction.FieldNativeToolsConfig] = struct{}{}
}

// NativeToolsConfigCleared returns if the "native_tools_config" field was cleared in this mutation.
func (m *LLMInteractionMutation) NativeToolsConfigCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldNativeToolsConfig]
	return ok
}

// ResetNativeToolsConfig resets all changes to the "native_tools_config" field.
func (m *LLMInteractionMutation) ResetNativeToolsConfig() {
	m.native_tools_config = nil
	delete(m.clearedFields, llminteraction.FieldNativeToolsConfig)
}

// SetStartTimeUs sets the "start_time_us" field.
func (m *LLMInteractionMutation) SetStartTimeUs(i int64) {
	m.start_time_us = &i
	m.addstart_time_us = nil
}

// StartTimeUs returns the value of the "start_time_us" field in the mutation.
func (m *LLMInteractionMutation) StartTimeUs() (r int64, exists bool) {
	v := m.start_time_us
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTimeUs returns the old "start_time_us" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldStartTimeUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTimeUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTimeUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTimeUs: %w", err)
	}
	return oldValue.StartTimeUs, nil
}

// AddStartTimeUs adds i to the "start_time_us" field.
func (m *LLMInteractionMutation) AddStartTimeUs(i int64) {
	if m.addstart_time_us != nil {
		*m.addstart_time_us += i
	} else {
		m.addstart_time_us = &i
	}
}

// AddedStartTimeUs returns the value that was added to the "start_time_us" field in this mutation.
func (m *LLMInteractionMutation) AddedStartTimeUs() (r int64, exists bool) {
	v := m.addstart_time_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTimeUs resets all changes to the "start_time_us" field.
func (m *LLMInteractionMutation) ResetStartTimeUs() {
	m.start_time_us = nil
	m.addstart_time_us = nil
}

// SetEndTimeUs sets the "end_time_us" field.
func (m *LLMInteractionMutation) SetEndTimeUs(i int64) {
	m.end_time_us = &i
	m.addend_time_us = nil
}

// EndTimeUs returns the value of the "end_time_us" field in the mutation.
func (m *LLMInteractionMutation) EndTimeUs() (r int64, exists bool) {
	v := m.end_time_us
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTimeUs returns the old "end_time_us" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldEndTimeUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTimeUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTimeUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTimeUs: %w", err)
	}
	return oldValue.EndTimeUs, nil
}

// AddEndTimeUs adds i to the "end_time_us" field.
func (m *LLMInteractionMutation) AddEndTimeUs(i int64) {
	if m.addend_time_us != nil {
		*m.addend_time_us += i
	} else {
		m.addend_time_us = &i
	}
}

// AddedEndTimeUs returns the value that was added to the "end_time_us" field in this mutation.
func (m *LLMInteractionMutation) AddedEndTimeUs() (r int64, exists bool) {
	v := m.addend_time_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndTimeUs clears the value of the "end_time_us" field.
func (m *LLMInteractionMutation) ClearEndTimeUs() {
	m.end_time_us = nil
	m.addend_time_us = nil
	m.clearedFields[llminteraction.FieldEndTimeUs] = struct{}{}
}

// EndTimeUsCleared returns if the "end_time_us" field was cleared in this mutation.
func (m *LLMInteractionMutation) EndTimeUsCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldEndTimeUs]
	return ok
}

// ResetEndTimeUs resets all changes to the "end_time_us" field.
func (m *LLMInteractionMutation) ResetEndTimeUs() {
	m.end_time_us = nil
	m.addend_time_us = nil
	delete(m.clearedFields, llminteraction.FieldEndTimeUs)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LLMInteractionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LLMInteractionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LLMInteractionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LLMInteractionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *LLMInteractionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[llminteraction.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *LLMInteractionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LLMInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, llminteraction.FieldDurationMs)
}

// SetTimestampUs sets the "timestamp_us" field.
func (m *LLMInteractionMutation) SetTimestampUs(i int64) {
	m.timestamp_us = &i
	m.addtimestamp_us = nil
}

// TimestampUs returns the value of the "timestamp_us" field in the mutation.
func (m *LLMInteractionMutation) TimestampUs() (r int64, exists bool) {
	v := m.timestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampUs returns the old "timestamp_us" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTimestampUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampUs: %w", err)
	}
	return oldValue.TimestampUs, nil
}

// AddTimestampUs adds i to the "timestamp_us" field.
func (m *LLMInteractionMutation) AddTimestampUs(i int64) {
	if m.addtimestamp_us != nil {
		*m.addtimestamp_us += i
	} else {
		m.addtimestamp_us = &i
	}
}

// AddedTimestampUs returns the value that was added to the "timestamp_us" field in this mutation.
func (m *LLMInteractionMutation) AddedTimestampUs() (r int64, exists bool) {
	v := m.addtimestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampUs resets all changes to the "timestamp_us" field.
func (m *LLMInteractionMutation) ResetTimestampUs() {
	m.timestamp_us = nil
	m.addtimestamp_us = nil
}

// SetSuccess sets the "success" field.
func (m *LLMInteractionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMInteractionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMInteractionMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llminteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llminteraction.FieldErrorMessage)
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMInteractionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMInteractionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldInputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMInteractionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearInputTokens clears the value of the "input_tokens" field.
func (m *LLMInteractionMutation) ClearInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	m.clearedFields[llminteraction.FieldInputTokens] = struct{}{}
}

// InputTokensCleared returns if the "input_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) InputTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldInputTokens]
	return ok
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMInteractionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
	delete(m.clearedFields, llminteraction.FieldInputTokens)
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMInteractionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMInteractionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldOutputTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMInteractionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutputTokens clears the value of the "output_tokens" field.
func (m *LLMInteractionMutation) ClearOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	m.clearedFields[llminteraction.FieldOutputTokens] = struct{}{}
}

// OutputTokensCleared returns if the "output_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) OutputTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldOutputTokens]
	return ok
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMInteractionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
	delete(m.clearedFields, llminteraction.FieldOutputTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *LLMInteractionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *LLMInteractionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTotalTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *LLMInteractionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *LLMInteractionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *LLMInteractionMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[llminteraction.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *LLMInteractionMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *LLMInteractionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, llminteraction.FieldTotalTokens)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *LLMInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[llminteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *LLMInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *LLMInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearStageExecution clears the "stage_execution" edge to the StageExecution entity.
func (m *LLMInteractionMutation) ClearStageExecution() {
	m.clearedstage_execution = true
	m.clearedFields[llminteraction.FieldStageExecutionID] = struct{}{}
}

// StageExecutionCleared reports if the "stage_execution" edge to the StageExecution entity was cleared.
func (m *LLMInteractionMutation) StageExecutionCleared() bool {
	return m.clearedstage_execution
}

// StageExecutionIDs returns the "stage_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageExecutionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) StageExecutionIDs() (ids []string) {
	if id := m.stage_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStageExecution resets all changes to the "stage_execution" edge.
func (m *LLMInteractionMutation) ResetStageExecution() {
	m.stage_execution = nil
	m.clearedstage_execution = false
}

// Where appends a list predicates to the LLMInteractionMutation builder.
func (m *LLMInteractionMutation) Where(ps ...predicate.LLMInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMInteraction).
func (m *LLMInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMInteractionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.session != nil {
		fields = append(fields, llminteraction.FieldSessionID)
	}
	if m.stage_execution != nil {
		fields = append(fields, llminteraction.FieldStageExecutionID)
	}
	if m.provider != nil {
		fields = append(fields, llminteraction.FieldProvider)
	}
	if m.model_name != nil {
		fields = append(fields, llminteraction.FieldModelName)
	}
	if m.temperature != nil {
		fields = append(fields, llminteraction.FieldTemperature)
	}
	if m.interaction_type != nil {
		fields = append(fields, llminteraction.FieldInteractionType)
	}
	if m.conversation != nil {
		fields = append(fields, llminteraction.FieldConversation)
	}
	if m.native_tools_config != nil {
		fields = append(fields, llminteraction.FieldNativeToolsConfig)
	}
	if m.start_time_us != nil {
		fields = append(fields, llminteraction.FieldStartTimeUs)
	}
	if m.end_time_us != nil {
		fields = append(fields, llminteraction.FieldEndTimeUs)
	}
	if m.duration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.timestamp_us != nil {
		fields = append(fields, llminteraction.FieldTimestampUs)
	}
	if m.success != nil {
		fields = append(fields, llminteraction.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	if m.input_tokens != nil {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.SessionID()
	case llminteraction.FieldStageExecutionID:
		return m.StageExecutionID()
	case llminteraction.FieldProvider:
		return m.Provider()
	case llminteraction.FieldModelName:
		return m.ModelName()
	case llminteraction.FieldTemperature:
		return m.Temperature()
	case llminteraction.FieldInteractionType:
		return m.InteractionType()
	case llminteraction.FieldConversation:
		return m.Conversation()
	case llminteraction.FieldNativeToolsConfig:
		return m.NativeToolsConfig()
	case llminteraction.FieldStartTimeUs:
		return m.StartTimeUs()
	case llminteraction.FieldEndTimeUs:
		return m.EndTimeUs()
	case llminteraction.FieldDurationMs:
		return m.DurationMs()
	case llminteraction.FieldTimestampUs:
		return m.TimestampUs()
	case llminteraction.FieldSuccess:
		return m.Success()
	case llminteraction.FieldErrorMessage:
		return m.ErrorMessage()
	case llminteraction.FieldInputTokens:
		return m.InputTokens()
	case llminteraction.FieldOutputTokens:
		return m.OutputTokens()
	case llminteraction.FieldTotalTokens:
		return m.TotalTokens()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llminteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case llminteraction.FieldStageExecutionID:
		return m.OldStageExecutionID(ctx)
	case llminteraction.FieldProvider:
		return m.OldProvider(ctx)
	case llminteraction.FieldModelName:
		return m.OldModelName(ctx)
	case llminteraction.FieldTemperature:
		return m.OldTemperature(ctx)
	case llminteraction.FieldInteractionType:
		return m.OldInteractionType(ctx)
	case llminteraction.FieldConversation:
		return m.OldConversation(ctx)
	case llminteraction.FieldNativeToolsConfig:
		return m.OldNativeToolsConfig(ctx)
	case llminteraction.FieldStartTimeUs:
		return m.OldStartTimeUs(ctx)
	case llminteraction.FieldEndTimeUs:
		return m.OldEndTimeUs(ctx)
	case llminteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case llminteraction.FieldTimestampUs:
		return m.OldTimestampUs(ctx)
	case llminteraction.FieldSuccess:
		return m.OldSuccess(ctx)
	case llminteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llminteraction.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llminteraction.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llminteraction.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	}
	return nil, fmt.Errorf("unknown LLMInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case llminteraction.FieldStageExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageExecutionID(v)
		return nil
	case llminteraction.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llminteraction.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llminteraction.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case llminteraction.FieldInteractionType:
		v, ok := value.(llminteraction.InteractionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionType(v)
		return nil
	case llminteraction.FieldConversation:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversation(v)
		return nil
	case llminteraction.FieldNativeToolsConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNativeToolsConfig(v)
		return nil
	case llminteraction.FieldStartTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTimeUs(v)
		return nil
	case llminteraction.FieldEndTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTimeUs(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case llminteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampUs(v)
		return nil
	case llminteraction.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llminteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llminteraction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llminteraction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, llminteraction.FieldTemperature)
	}
	if m.addstart_time_us != nil {
		fields = append(fields, llminteraction.FieldStartTimeUs)
	}
	if m.addend_time_us != nil {
		fields = append(fields, llminteraction.FieldEndTimeUs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.addtimestamp_us != nil {
		fields = append(fields, llminteraction.FieldTimestampUs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldTemperature:
		return m.AddedTemperature()
	case llminteraction.FieldStartTimeUs:
		return m.AddedStartTimeUs()
	case llminteraction.FieldEndTimeUs:
		return m.AddedEndTimeUs()
	case llminteraction.FieldDurationMs:
		return m.AddedDurationMs()
	case llminteraction.FieldTimestampUs:
		return m.AddedTimestampUs()
	case llminteraction.FieldInputTokens:
		return m.AddedInputTokens()
	case llminteraction.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llminteraction.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case llminteraction.FieldStartTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTimeUs(v)
		return nil
	case llminteraction.FieldEndTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTimeUs(v)
		return nil
	case llminteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case llminteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampUs(v)
		return nil
	case llminteraction.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llminteraction.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llminteraction.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llminteraction.FieldTemperature) {
		fields = append(fields, llminteraction.FieldTemperature)
	}
	if m.FieldCleared(llminteraction.FieldNativeToolsConfig) {
		fields = append(fields, llminteraction.FieldNativeToolsConfig)
	}
	if m.FieldCleared(llminteraction.FieldEndTimeUs) {
		fields = append(fields, llminteraction.FieldEndTimeUs)
	}
	if m.FieldCleared(llminteraction.FieldDurationMs) {
		fields = append(fields, llminteraction.FieldDurationMs)
	}
	if m.FieldCleared(llminteraction.FieldErrorMessage) {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	if m.FieldCleared(llminteraction.FieldInputTokens) {
		fields = append(fields, llminteraction.FieldInputTokens)
	}
	if m.FieldCleared(llminteraction.FieldOutputTokens) {
		fields = append(fields, llminteraction.FieldOutputTokens)
	}
	if m.FieldCleared(llminteraction.FieldTotalTokens) {
		fields = append(fields, llminteraction.FieldTotalTokens)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ClearField(name string) error {
	switch name {
	case llminteraction.FieldTemperature:
		m.ClearTemperature()
		return nil
	case llminteraction.FieldNativeToolsConfig:
		m.ClearNativeToolsConfig()
		return nil
	case llminteraction.FieldEndTimeUs:
		m.ClearEndTimeUs()
		return nil
	case llminteraction.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llminteraction.FieldInputTokens:
		m.ClearInputTokens()
		return nil
	case llminteraction.FieldOutputTokens:
		m.ClearOutputTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ResetField(name string) error {
	switch name {
	case llminteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case llminteraction.FieldStageExecutionID:
		m.ResetStageExecutionID()
		return nil
	case llminteraction.FieldProvider:
		m.ResetProvider()
		return nil
	case llminteraction.FieldModelName:
		m.ResetModelName()
		return nil
	case llminteraction.FieldTemperature:
		m.ResetTemperature()
		return nil
	case llminteraction.FieldInteractionType:
		m.ResetInteractionType()
		return nil
	case llminteraction.FieldConversation:
		m.ResetConversation()
		return nil
	case llminteraction.FieldNativeToolsConfig:
		m.ResetNativeToolsConfig()
		return nil
	case llminteraction.FieldStartTimeUs:
		m.ResetStartTimeUs()
		return nil
	case llminteraction.FieldEndTimeUs:
		m.ResetEndTimeUs()
		return nil
	case llminteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case llminteraction.FieldTimestampUs:
		m.ResetTimestampUs()
		return nil
	case llminteraction.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llminteraction.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llminteraction.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llminteraction.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, llminteraction.EdgeSession)
	}
	if m.stage_execution != nil {
		edges = append(edges, llminteraction.EdgeStageExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case llminteraction.EdgeStageExecution:
		if id := m.stage_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, llminteraction.EdgeSession)
	}
	if m.clearedstage_execution {
		edges = append(edges, llminteraction.EdgeStageExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case llminteraction.EdgeSession:
		return m.clearedsession
	case llminteraction.EdgeStageExecution:
		return m.clearedstage_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMInteractionMutation) ClearEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ClearSession()
		return nil
	case llminteraction.EdgeStageExecution:
		m.ClearStageExecution()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMInteractionMutation) ResetEdge(name string) error {
	switch name {
	case llminteraction.EdgeSession:
		m.ResetSession()
		return nil
	case llminteraction.EdgeStageExecution:
		m.ResetStageExecution()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction edge %s", name)
}

// MCPInteractionMutation represents an operation that mutates the MCPInteraction nodes in the graph.
type MCPInteractionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	server_name            *string
	communication_type     *mcpinteraction.CommunicationType
	tool_name              *string
	tool_arguments         *map[string]interface{}
	tool_result            *map[string]interface{}
	available_tools        *map[string]interface{}
	start_time_us          *int64
	addstart_time_us       *int64
	end_time_us            *int64
	addend_time_us         *int64
	duration_ms            *int
	addduration_ms         *int
	timestamp_us           *int64
	addtimestamp_us        *int64
	success                *bool
	error_message          *string
	step_description       *string
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	stage_execution        *string
	clearedstage_execution bool
	done                   bool
	oldValue               func(context.Context) (*MCPInteraction, error)
	predicates             []predicate.MCPInteraction
}

var _ ent.Mutation = (*MCPInteractionMutation)(nil)

// mcpinteractionOption allows management of the mutation configuration using functional options.
type mcpinteractionOption func(*MCPInteractionMutation)

// newMCPInteractionMutation creates new mutation for the MCPInteraction entity.
func newMCPInteractionMutation(c config, op Op, opts ...mcpinteractionOption) *MCPInteractionMutation {
	m := &MCPInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeMCPInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMCPInteractionID sets the ID field of the mutation.
func withMCPInteractionID(id string) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *MCPInteraction
		)
		m.oldValue = func(ctx context.Context) (*MCPInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MCPInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMCPInteraction sets the old MCPInteraction of the mutation.
func withMCPInteraction(node *MCPInteraction) mcpinteractionOption {
	return func(m *MCPInteractionMutation) {
		m.oldValue = func(context.Context) (*MCPInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MCPInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MCPInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MCPInteraction entities.
func (m *MCPInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MCPInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MCPInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MCPInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MCPInteractionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MCPInteractionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MCPInteractionMutation) ResetSessionID() {
	m.session = nil
}

// SetStageExecutionID sets the "stage_execution_id" field.
func (m *MCPInteractionMutation) SetStageExecutionID(s string) {
	m.stage_execution = &s
}

// StageExecutionID returns the value of the "stage_execution_id" field in the mutation.
func (m *MCPInteractionMutation) StageExecutionID() (r string, exists bool) {
	v := m.stage_execution
	if v == nil {
		return
	}
	return *v, true
}

// OldStageExecutionID returns the old "stage_execution_id" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldStageExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageExecutionID: %w", err)
	}
	return oldValue.StageExecutionID, nil
}

// ResetStageExecutionID resets all changes to the "stage_execution_id" field.
func (m *MCPInteractionMutation) ResetStageExecutionID() {
	m.stage_execution = nil
}

// SetServerName sets the "server_name" field.
func (m *MCPInteractionMutation) SetServerName(s string) {
	m.server_name = &s
}

// ServerName returns the value of the "server_name" field in the mutation.
func (m *MCPInteractionMutation) ServerName() (r string, exists bool) {
	v := m.server_name
	if v == nil {
		return
	}
	return *v, true
}

// OldServerName returns the old "server_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldServerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerName: %w", err)
	}
	return oldValue.ServerName, nil
}

// ResetServerName resets all changes to the "server_name" field.
func (m *MCPInteractionMutation) ResetServerName() {
	m.server_name = nil
}

// SetCommunicationType sets the "communication_type" field.
func (m *MCPInteractionMutation) SetCommunicationType(mt mcpinteraction.CommunicationType) {
	m.communication_type = &mt
}

// CommunicationType returns the value of the "communication_type" field in the mutation.
func (m *MCPInteractionMutation) CommunicationType() (r mcpinteraction.CommunicationType, exists bool) {
	v := m.communication_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunicationType returns the old "communication_type" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldCommunicationType(ctx context.Context) (v mcpinteraction.CommunicationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunicationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunicationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunicationType: %w", err)
	}
	return oldValue.CommunicationType, nil
}

// ResetCommunicationType resets all changes to the "communication_type" field.
func (m *MCPInteractionMutation) ResetCommunicationType() {
	m.communication_type = nil
}

// SetToolName sets the "tool_name" field.
func (m *MCPInteractionMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *MCPInteractionMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ClearToolName clears the value of the "tool_name" field.
func (m *MCPInteractionMutation) ClearToolName() {
	m.tool_name = nil
	m.clearedFields[mcpinteraction.FieldToolName] = struct{}{}
}

// ToolNameCleared returns if the "tool_name" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolNameCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolName]
	return ok
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *MCPInteractionMutation) ResetToolName() {
	m.tool_name = nil
	delete(m.clearedFields, mcpinteraction.FieldToolName)
}

// SetToolArguments sets the "tool_arguments" field.
func (m *MCPInteractionMutation) SetToolArguments(value map[string]interface{}) {
	m.tool_arguments = &value
}

// ToolArguments returns the value of the "tool_arguments" field in the mutation.
func (m *MCPInteractionMutation) ToolArguments() (r map[string]interface{}, exists bool) {
	v := m.tool_arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldToolArguments returns the old "tool_arguments" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolArguments(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolArguments: %w", err)
	}
	return oldValue.ToolArguments, nil
}

// ClearToolArguments clears the value of the "tool_arguments" field.
func (m *MCPInteractionMutation) ClearToolArguments() {
	m.tool_arguments = nil
	m.clearedFields[mcpinteraction.FieldToolArguments] = struct{}{}
}

// ToolArgumentsCleared returns if the "tool_arguments" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolArgumentsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolArguments]
	return ok
}

// ResetToolArguments resets all changes to the "tool_arguments" field.
func (m *MCPInteractionMutation) ResetToolArguments() {
	m.tool_arguments = nil
	delete(m.clearedFields, mcpinteraction.FieldToolArguments)
}

// SetToolResult sets the "tool_result" field.
func (m *MCPInteractionMutation) SetToolResult(value map[string]interface{}) {
	m.tool_result = &value
}

// ToolResult returns the value of the "tool_result" field in the mutation.
func (m *MCPInteractionMutation) ToolResult() (r map[string]interface{}, exists bool) {
	v := m.tool_result
	if v == nil {
		return
	}
	return *v, true
}

// OldToolResult returns the old "tool_result" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldToolResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolResult: %w", err)
	}
	return oldValue.ToolResult, nil
}

// ClearToolResult clears the value of the "tool_result" field.
func (m *MCPInteractionMutation) ClearToolResult() {
	m.tool_result = nil
	m.clearedFields[mcpinteraction.FieldToolResult] = struct{}{}
}

// ToolResultCleared returns if the "tool_result" field was cleared in this mutation.
func (m *MCPInteractionMutation) ToolResultCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldToolResult]
	return ok
}

// ResetToolResult resets all changes to the "tool_result" field.
func (m *MCPInteractionMutation) ResetToolResult() {
	m.tool_result = nil
	delete(m.clearedFields, mcpinteraction.FieldToolResult)
}

// SetAvailableTools sets the "available_tools" field.
func (m *MCPInteractionMutation) SetAvailableTools(value map[string]interface{}) {
	m.available_tools = &value
}

// AvailableTools returns the value of the "available_tools" field in the mutation.
func (m *MCPInteractionMutation) AvailableTools() (r map[string]interface{}, exists bool) {
	v := m.available_tools
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableTools returns the old "available_tools" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldAvailableTools(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableTools: %w", err)
	}
	return oldValue.AvailableTools, nil
}

// ClearAvailableTools clears the value of the "available_tools" field.
func (m *MCPInteractionMutation) ClearAvailableTools() {
	m.available_tools = nil
	m.clearedFields[mcpinteraction.FieldAvailableTools] = struct{}{}
}

// AvailableToolsCleared returns if the "available_tools" field was cleared in this mutation.
func (m *MCPInteractionMutation) AvailableToolsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldAvailableTools]
	return ok
}

// ResetAvailableTools resets all changes to the "available_tools" field.
func (m *MCPInteractionMutation) ResetAvailableTools() {
	m.available_tools = nil
	delete(m.clearedFields, mcpinteraction.FieldAvailableTools)
}

// SetStartTimeUs sets the "start_time_us" field.
func (m *MCPInteractionMutation) SetStartTimeUs(i int64) {
	m.start_time_us = &i
	m.addstart_time_us = nil
}

// StartTimeUs returns the value of the "start_time_us" field in the mutation.
func (m *MCPInteractionMutation) StartTimeUs() (r int64, exists bool) {
	v := m.start_time_us
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTimeUs returns the old "start_time_us" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldStartTimeUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTimeUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTimeUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTimeUs: %w", err)
	}
	return oldValue.StartTimeUs, nil
}

// AddStartTimeUs adds i to the "start_time_us" field.
func (m *MCPInteractionMutation) AddStartTimeUs(i int64) {
	if m.addstart_time_us != nil {
		*m.addstart_time_us += i
	} else {
		m.addstart_time_us = &i
	}
}

// AddedStartTimeUs returns the value that was added to the "start_time_us" field in this mutation.
func (m *MCPInteractionMutation) AddedStartTimeUs() (r int64, exists bool) {
	v := m.addstart_time_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartTimeUs resets all changes to the "start_time_us" field.
func (m *MCPInteractionMutation) ResetStartTimeUs() {
	m.start_time_us = nil
	m.addstart_time_us = nil
}

// SetEndTimeUs sets the "end_time_us" field.
func (m *MCPInteractionMutation) SetEndTimeUs(i int64) {
	m.end_time_us = &i
	m.addend_time_us = nil
}

// EndTimeUs returns the value of the "end_time_us" field in the mutation.
func (m *MCPInteractionMutation) EndTimeUs() (r int64, exists bool) {
	v := m.end_time_us
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTimeUs returns the old "end_time_us" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldEndTimeUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTimeUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTimeUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTimeUs: %w", err)
	}
	return oldValue.EndTimeUs, nil
}

// AddEndTimeUs adds i to the "end_time_us" field.
func (m *MCPInteractionMutation) AddEndTimeUs(i int64) {
	if m.addend_time_us != nil {
		*m.addend_time_us += i
	} else {
		m.addend_time_us = &i
	}
}

// AddedEndTimeUs returns the value that was added to the "end_time_us" field in this mutation.
func (m *MCPInteractionMutation) AddedEndTimeUs() (r int64, exists bool) {
	v := m.addend_time_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndTimeUs clears the value of the "end_time_us" field.
func (m *MCPInteractionMutation) ClearEndTimeUs() {
	m.end_time_us = nil
	m.addend_time_us = nil
	m.clearedFields[mcpinteraction.FieldEndTimeUs] = struct{}{}
}

// EndTimeUsCleared returns if the "end_time_us" field was cleared in this mutation.
func (m *MCPInteractionMutation) EndTimeUsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldEndTimeUs]
	return ok
}

// ResetEndTimeUs resets all changes to the "end_time_us" field.
func (m *MCPInteractionMutation) ResetEndTimeUs() {
	m.end_time_us = nil
	m.addend_time_us = nil
	delete(m.clearedFields, mcpinteraction.FieldEndTimeUs)
}

// SetDurationMs sets the "duration_ms" field.
func (m *MCPInteractionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *MCPInteractionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *MCPInteractionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *MCPInteractionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *MCPInteractionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[mcpinteraction.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *MCPInteractionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *MCPInteractionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, mcpinteraction.FieldDurationMs)
}

// SetTimestampUs sets the "timestamp_us" field.
func (m *MCPInteractionMutation) SetTimestampUs(i int64) {
	m.timestamp_us = &i
	m.addtimestamp_us = nil
}

// TimestampUs returns the value of the "timestamp_us" field in the mutation.
func (m *MCPInteractionMutation) TimestampUs() (r int64, exists bool) {
	v := m.timestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampUs returns the old "timestamp_us" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldTimestampUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampUs: %w", err)
	}
	return oldValue.TimestampUs, nil
}

// AddTimestampUs adds i to the "timestamp_us" field.
func (m *MCPInteractionMutation) AddTimestampUs(i int64) {
	if m.addtimestamp_us != nil {
		*m.addtimestamp_us += i
	} else {
		m.addtimestamp_us = &i
	}
}

// AddedTimestampUs returns the value that was added to the "timestamp_us" field in this mutation.
func (m *MCPInteractionMutation) AddedTimestampUs() (r int64, exists bool) {
	v := m.addtimestamp_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampUs resets all changes to the "timestamp_us" field.
func (m *MCPInteractionMutation) ResetTimestampUs() {
	m.timestamp_us = nil
	m.addtimestamp_us = nil
}

// SetSuccess sets the "success" field.
func (m *MCPInteractionMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *MCPInteractionMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *MCPInteractionMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MCPInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MCPInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MCPInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[mcpinteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MCPInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MCPInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, mcpinteraction.FieldErrorMessage)
}

// SetStepDescription sets the "step_description" field.
func (m *MCPInteractionMutation) SetStepDescription(s string) {
	m.step_description = &s
}

// StepDescription returns the value of the "step_description" field in the mutation.
func (m *MCPInteractionMutation) StepDescription() (r string, exists bool) {
	v := m.step_description
	if v == nil {
		return
	}
	return *v, true
}

// OldStepDescription returns the old "step_description" field's value of the MCPInteraction entity.
// If the MCPInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPInteractionMutation) OldStepDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepDescription: %w", err)
	}
	return oldValue.StepDescription, nil
}

// ClearStepDescription clears the value of the "step_description" field.
func (m *MCPInteractionMutation) ClearStepDescription() {
	m.step_description = nil
	m.clearedFields[mcpinteraction.FieldStepDescription] = struct{}{}
}

// StepDescriptionCleared returns if the "step_description" field was cleared in this mutation.
func (m *MCPInteractionMutation) StepDescriptionCleared() bool {
	_, ok := m.clearedFields[mcpinteraction.FieldStepDescription]
	return ok
}

// ResetStepDescription resets all changes to the "step_description" field.
func (m *MCPInteractionMutation) ResetStepDescription() {
	m.step_description = nil
	delete(m.clearedFields, mcpinteraction.FieldStepDescription)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *MCPInteractionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[mcpinteraction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *MCPInteractionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MCPInteractionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MCPInteractionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearStageExecution clears the "stage_execution" edge to the StageExecution entity.
func (m *MCPInteractionMutation) ClearStageExecution() {
	m.clearedstage_execution = true
	m.clearedFields[mcpinteraction.FieldStageExecutionID] = struct{}{}
}

// StageExecutionCleared reports if the "stage_execution" edge to the StageExecution entity was cleared.
func (m *MCPInteractionMutation) StageExecutionCleared() bool {
	return m.clearedstage_execution
}

// StageExecutionIDs returns the "stage_execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StageExecutionID instead. It exists only for internal usage by the builders.
func (m *MCPInteractionMutation) StageExecutionIDs() (ids []string) {
	if id := m.stage_execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStageExecution resets all changes to the "stage_execution" edge.
func (m *MCPInteractionMutation) ResetStageExecution() {
	m.stage_execution = nil
	m.clearedstage_execution = false
}

// Where appends a list predicates to the MCPInteractionMutation builder.
func (m *MCPInteractionMutation) Where(ps ...predicate.MCPInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MCPInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MCPInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MCPInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MCPInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MCPInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MCPInteraction).
func (m *MCPInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MCPInteractionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.session != nil {
		fields = append(fields, mcpinteraction.FieldSessionID)
	}
	if m.stage_execution != nil {
		fields = append(fields, mcpinteraction.FieldStageExecutionID)
	}
	if m.server_name != nil {
		fields = append(fields, mcpinteraction.FieldServerName)
	}
	if m.communication_type != nil {
		fields = append(fields, mcpinteraction.FieldCommunicationType)
	}
	if m.tool_name != nil {
		fields = append(fields, mcpinteraction.FieldToolName)
	}
	if m.tool_arguments != nil {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.tool_result != nil {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.available_tools != nil {
		fields = append(fields, mcpinteraction.FieldAvailableTools)
	}
	if m.start_time_us != nil {
		fields = append(fields, mcpinteraction.FieldStartTimeUs)
	}
	if m.end_time_us != nil {
		fields = append(fields, mcpinteraction.FieldEndTimeUs)
	}
	if m.duration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.timestamp_us != nil {
		fields = append(fields, mcpinteraction.FieldTimestampUs)
	}
	if m.success != nil {
		fields = append(fields, mcpinteraction.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	if m.step_description != nil {
		fields = append(fields, mcpinteraction.FieldStepDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MCPInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.SessionID()
	case mcpinteraction.FieldStageExecutionID:
		return m.StageExecutionID()
	case mcpinteraction.FieldServerName:
		return m.ServerName()
	case mcpinteraction.FieldCommunicationType:
		return m.CommunicationType()
	case mcpinteraction.FieldToolName:
		return m.ToolName()
	case mcpinteraction.FieldToolArguments:
		return m.ToolArguments()
	case mcpinteraction.FieldToolResult:
		return m.ToolResult()
	case mcpinteraction.FieldAvailableTools:
		return m.AvailableTools()
	case mcpinteraction.FieldStartTimeUs:
		return m.StartTimeUs()
	case mcpinteraction.FieldEndTimeUs:
		return m.EndTimeUs()
	case mcpinteraction.FieldDurationMs:
		return m.DurationMs()
	case mcpinteraction.FieldTimestampUs:
		return m.TimestampUs()
	case mcpinteraction.FieldSuccess:
		return m.Success()
	case mcpinteraction.FieldErrorMessage:
		return m.ErrorMessage()
	case mcpinteraction.FieldStepDescription:
		return m.StepDescription()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MCPInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcpinteraction.FieldSessionID:
		return m.OldSessionID(ctx)
	case mcpinteraction.FieldStageExecutionID:
		return m.OldStageExecutionID(ctx)
	case mcpinteraction.FieldServerName:
		return m.OldServerName(ctx)
	case mcpinteraction.FieldCommunicationType:
		return m.OldCommunicationType(ctx)
	case mcpinteraction.FieldToolName:
		return m.OldToolName(ctx)
	case mcpinteraction.FieldToolArguments:
		return m.OldToolArguments(ctx)
	case mcpinteraction.FieldToolResult:
		return m.OldToolResult(ctx)
	case mcpinteraction.FieldAvailableTools:
		return m.OldAvailableTools(ctx)
	case mcpinteraction.FieldStartTimeUs:
		return m.OldStartTimeUs(ctx)
	case mcpinteraction.FieldEndTimeUs:
		return m.OldEndTimeUs(ctx)
	case mcpinteraction.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case mcpinteraction.FieldTimestampUs:
		return m.OldTimestampUs(ctx)
	case mcpinteraction.FieldSuccess:
		return m.OldSuccess(ctx)
	case mcpinteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case mcpinteraction.FieldStepDescription:
		return m.OldStepDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MCPInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case mcpinteraction.FieldStageExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageExecutionID(v)
		return nil
	case mcpinteraction.FieldServerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerName(v)
		return nil
	case mcpinteraction.FieldCommunicationType:
		v, ok := value.(mcpinteraction.CommunicationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunicationType(v)
		return nil
	case mcpinteraction.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case mcpinteraction.FieldToolArguments:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolArguments(v)
		return nil
	case mcpinteraction.FieldToolResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolResult(v)
		return nil
	case mcpinteraction.FieldAvailableTools:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableTools(v)
		return nil
	case mcpinteraction.FieldStartTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTimeUs(v)
		return nil
	case mcpinteraction.FieldEndTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTimeUs(v)
		return nil
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case mcpinteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampUs(v)
		return nil
	case mcpinteraction.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case mcpinteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case mcpinteraction.FieldStepDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MCPInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addstart_time_us != nil {
		fields = append(fields, mcpinteraction.FieldStartTimeUs)
	}
	if m.addend_time_us != nil {
		fields = append(fields, mcpinteraction.FieldEndTimeUs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.addtimestamp_us != nil {
		fields = append(fields, mcpinteraction.FieldTimestampUs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MCPInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mcpinteraction.FieldStartTimeUs:
		return m.AddedStartTimeUs()
	case mcpinteraction.FieldEndTimeUs:
		return m.AddedEndTimeUs()
	case mcpinteraction.FieldDurationMs:
		return m.AddedDurationMs()
	case mcpinteraction.FieldTimestampUs:
		return m.AddedTimestampUs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mcpinteraction.FieldStartTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartTimeUs(v)
		return nil
	case mcpinteraction.FieldEndTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndTimeUs(v)
		return nil
	case mcpinteraction.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case mcpinteraction.FieldTimestampUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampUs(v)
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MCPInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mcpinteraction.FieldToolName) {
		fields = append(fields, mcpinteraction.FieldToolName)
	}
	if m.FieldCleared(mcpinteraction.FieldToolArguments) {
		fields = append(fields, mcpinteraction.FieldToolArguments)
	}
	if m.FieldCleared(mcpinteraction.FieldToolResult) {
		fields = append(fields, mcpinteraction.FieldToolResult)
	}
	if m.FieldCleared(mcpinteraction.FieldAvailableTools) {
		fields = append(fields, mcpinteraction.FieldAvailableTools)
	}
	if m.FieldCleared(mcpinteraction.FieldEndTimeUs) {
		fields = append(fields, mcpinteraction.FieldEndTimeUs)
	}
	if m.FieldCleared(mcpinteraction.FieldDurationMs) {
		fields = append(fields, mcpinteraction.FieldDurationMs)
	}
	if m.FieldCleared(mcpinteraction.FieldErrorMessage) {
		fields = append(fields, mcpinteraction.FieldErrorMessage)
	}
	if m.FieldCleared(mcpinteraction.FieldStepDescription) {
		fields = append(fields, mcpinteraction.FieldStepDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MCPInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ClearField(name string) error {
	switch name {
	case mcpinteraction.FieldToolName:
		m.ClearToolName()
		return nil
	case mcpinteraction.FieldToolArguments:
		m.ClearToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ClearToolResult()
		return nil
	case mcpinteraction.FieldAvailableTools:
		m.ClearAvailableTools()
		return nil
	case mcpinteraction.FieldEndTimeUs:
		m.ClearEndTimeUs()
		return nil
	case mcpinteraction.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case mcpinteraction.FieldStepDescription:
		m.ClearStepDescription()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MCPInteractionMutation) ResetField(name string) error {
	switch name {
	case mcpinteraction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case mcpinteraction.FieldStageExecutionID:
		m.ResetStageExecutionID()
		return nil
	case mcpinteraction.FieldServerName:
		m.ResetServerName()
		return nil
	case mcpinteraction.FieldCommunicationType:
		m.ResetCommunicationType()
		return nil
	case mcpinteraction.FieldToolName:
		m.ResetToolName()
		return nil
	case mcpinteraction.FieldToolArguments:
		m.ResetToolArguments()
		return nil
	case mcpinteraction.FieldToolResult:
		m.ResetToolResult()
		return nil
	case mcpinteraction.FieldAvailableTools:
		m.ResetAvailableTools()
		return nil
	case mcpinteraction.FieldStartTimeUs:
		m.ResetStartTimeUs()
		return nil
	case mcpinteraction.FieldEndTimeUs:
		m.ResetEndTimeUs()
		return nil
	case mcpinteraction.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case mcpinteraction.FieldTimestampUs:
		m.ResetTimestampUs()
		return nil
	case mcpinteraction.FieldSuccess:
		m.ResetSuccess()
		return nil
	case mcpinteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case mcpinteraction.FieldStepDescription:
		m.ResetStepDescription()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MCPInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	if m.stage_execution != nil {
		edges = append(edges, mcpinteraction.EdgeStageExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MCPInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mcpinteraction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case mcpinteraction.EdgeStageExecution:
		if id := m.stage_execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MCPInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MCPInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MCPInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, mcpinteraction.EdgeSession)
	}
	if m.clearedstage_execution {
		edges = append(edges, mcpinteraction.EdgeStageExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MCPInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case mcpinteraction.EdgeSession:
		return m.clearedsession
	case mcpinteraction.EdgeStageExecution:
		return m.clearedstage_execution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MCPInteractionMutation) ClearEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ClearSession()
		return nil
	case mcpinteraction.EdgeStageExecution:
		m.ClearStageExecution()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MCPInteractionMutation) ResetEdge(name string) error {
	switch name {
	case mcpinteraction.EdgeSession:
		m.ResetSession()
		return nil
	case mcpinteraction.EdgeStageExecution:
		m.ResetStageExecution()
		return nil
	}
	return fmt.Errorf("unknown MCPInteraction edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	alert_type                 *string
	alert_data                 *map[string]interface{}
	runbook_url                *string
	runbook                    *string
	chain_id                   *string
	chain_config               *map[string]interface{}
	status                     *session.Status
	created_at_us              *int64
	addcreated_at_us           *int64
	started_at_us              *int64
	addstarted_at_us           *int64
	completed_at_us            *int64
	addcompleted_at_us         *int64
	final_analysis             *string
	final_analysis_summary     *string
	current_stage_index        *int
	addcurrent_stage_index     *int
	current_stage_execution_id *string
	author                     *string
	error_message              *string
	pod_id                     *string
	slack_message_fingerprint  *string
	last_interaction_at_us     *int64
	addlast_interaction_at_us  *int64
	clearedFields              map[string]struct{}
	stage_executions           map[string]struct{}
	removedstage_executions    map[string]struct{}
	clearedstage_executions    bool
	llm_interactions           map[string]struct{}
	removedllm_interactions    map[string]struct{}
	clearedllm_interactions    bool
	mcp_interactions           map[string]struct{}
	removedmcp_interactions    map[string]struct{}
	clearedmcp_interactions    bool
	done                       bool
	oldValue                   func(context.Context) (*Session, error)
	predicates                 []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAlertType sets the "alert_type" field.
func (m *SessionMutation) SetAlertType(s string) {
	m.alert_type = &s
}

// AlertType returns the value of the "alert_type" field in the mutation.
func (m *SessionMutation) AlertType() (r string, exists bool) {
	v := m.alert_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertType returns the old "alert_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAlertType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertType: %w", err)
	}
	return oldValue.AlertType, nil
}

// ResetAlertType resets all changes to the "alert_type" field.
func (m *SessionMutation) ResetAlertType() {
	m.alert_type = nil
}

// SetAlertData sets the "alert_data" field.
func (m *SessionMutation) SetAlertData(value map[string]interface{}) {
	m.alert_data = &value
}

// AlertData returns the value of the "alert_data" field in the mutation.
func (m *SessionMutation) AlertData() (r map[string]interface{}, exists bool) {
	v := m.alert_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertData returns the old "alert_data" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAlertData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertData: %w", err)
	}
	return oldValue.AlertData, nil
}

// ResetAlertData resets all changes to the "alert_data" field.
func (m *SessionMutation) ResetAlertData() {
	m.alert_data = nil
}

// SetRunbookURL sets the "runbook_url" field.
func (m *SessionMutation) SetRunbookURL(s string) {
	m.runbook_url = &s
}

// RunbookURL returns the value of the "runbook_url" field in the mutation.
func (m *SessionMutation) RunbookURL() (r string, exists bool) {
	v := m.runbook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRunbookURL returns the old "runbook_url" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRunbookURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunbookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunbookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunbookURL: %w", err)
	}
	return oldValue.RunbookURL, nil
}

// ClearRunbookURL clears the value of the "runbook_url" field.
func (m *SessionMutation) ClearRunbookURL() {
	m.runbook_url = nil
	m.clearedFields[session.FieldRunbookURL] = struct{}{}
}

// RunbookURLCleared returns if the "runbook_url" field was cleared in this mutation.
func (m *SessionMutation) RunbookURLCleared() bool {
	_, ok := m.clearedFields[session.FieldRunbookURL]
	return ok
}

// ResetRunbookURL resets all changes to the "runbook_url" field.
func (m *SessionMutation) ResetRunbookURL() {
	m.runbook_url = nil
	delete(m.clearedFields, session.FieldRunbookURL)
}

// SetRunbook sets the "runbook" field.
func (m *SessionMutation) SetRunbook(s string) {
	m.runbook = &s
}

// Runbook returns the value of the "runbook" field in the mutation.
func (m *SessionMutation) Runbook() (r string, exists bool) {
	v := m.runbook
	if v == nil {
		return
	}
	return *v, true
}

// OldRunbook returns the old "runbook" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldRunbook(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunbook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunbook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunbook: %w", err)
	}
	return oldValue.Runbook, nil
}

// ClearRunbook clears the value of the "runbook" field.
func (m *SessionMutation) ClearRunbook() {
	m.runbook = nil
	m.clearedFields[session.FieldRunbook] = struct{}{}
}

// RunbookCleared returns if the "runbook" field was cleared in this mutation.
func (m *SessionMutation) RunbookCleared() bool {
	_, ok := m.clearedFields[session.FieldRunbook]
	return ok
}

// ResetRunbook resets all changes to the "runbook" field.
func (m *SessionMutation) ResetRunbook() {
	m.runbook = nil
	delete(m.clearedFields, session.FieldRunbook)
}

// SetChainID sets the "chain_id" field.
func (m *SessionMutation) SetChainID(s string) {
	m.chain_id = &s
}

// ChainID returns the value of the "chain_id" field in the mutation.
func (m *SessionMutation) ChainID() (r string, exists bool) {
	v := m.chain_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChainID returns the old "chain_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldChainID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainID: %w", err)
	}
	return oldValue.ChainID, nil
}

// ResetChainID resets all changes to the "chain_id" field.
func (m *SessionMutation) ResetChainID() {
	m.chain_id = nil
}

// SetChainConfig sets the "chain_config" field.
func (m *SessionMutation) SetChainConfig(value map[string]interface{}) {
	m.chain_config = &value
}

// ChainConfig returns the value of the "chain_config" field in the mutation.
func (m *SessionMutation) ChainConfig() (r map[string]interface{}, exists bool) {
	v := m.chain_config
	if v == nil {
		return
	}
	return *v, true
}

// OldChainConfig returns the old "chain_config" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldChainConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChainConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChainConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChainConfig: %w", err)
	}
	return oldValue.ChainConfig, nil
}

// ClearChainConfig clears the value of the "chain_config" field.
func (m *SessionMutation) ClearChainConfig() {
	m.chain_config = nil
	m.clearedFields[session.FieldChainConfig] = struct{}{}
}

// ChainConfigCleared returns if the "chain_config" field was cleared in this mutation.
func (m *SessionMutation) ChainConfigCleared() bool {
	_, ok := m.clearedFields[session.FieldChainConfig]
	return ok
}

// ResetChainConfig resets all changes to the "chain_config" field.
func (m *SessionMutation) ResetChainConfig() {
	m.chain_config = nil
	delete(m.clearedFields, session.FieldChainConfig)
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAtUs sets the "created_at_us" field.
func (m *SessionMutation) SetCreatedAtUs(i int64) {
	m.created_at_us = &i
	m.addcreated_at_us = nil
}

// CreatedAtUs returns the value of the "created_at_us" field in the mutation.
func (m *SessionMutation) CreatedAtUs() (r int64, exists bool) {
	v := m.created_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtUs returns the old "created_at_us" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAtUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtUs: %w", err)
	}
	return oldValue.CreatedAtUs, nil
}

// AddCreatedAtUs adds i to the "created_at_us" field.
func (m *SessionMutation) AddCreatedAtUs(i int64) {
	if m.addcreated_at_us != nil {
		*m.addcreated_at_us += i
	} else {
		m.addcreated_at_us = &i
	}
}

// AddedCreatedAtUs returns the value that was added to the "created_at_us" field in this mutation.
func (m *SessionMutation) AddedCreatedAtUs() (r int64, exists bool) {
	v := m.addcreated_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtUs resets all changes to the "created_at_us" field.
func (m *SessionMutation) ResetCreatedAtUs() {
	m.created_at_us = nil
	m.addcreated_at_us = nil
}

// SetStartedAtUs sets the "started_at_us" field.
func (m *SessionMutation) SetStartedAtUs(i int64) {
	m.started_at_us = &i
	m.addstarted_at_us = nil
}

// StartedAtUs returns the value of the "started_at_us" field in the mutation.
func (m *SessionMutation) StartedAtUs() (r int64, exists bool) {
	v := m.started_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAtUs returns the old "started_at_us" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAtUs: %w", err)
	}
	return oldValue.StartedAtUs, nil
}

// AddStartedAtUs adds i to the "started_at_us" field.
func (m *SessionMutation) AddStartedAtUs(i int64) {
	if m.addstarted_at_us != nil {
		*m.addstarted_at_us += i
	} else {
		m.addstarted_at_us = &i
	}
}

// AddedStartedAtUs returns the value that was added to the "started_at_us" field in this mutation.
func (m *SessionMutation) AddedStartedAtUs() (r int64, exists bool) {
	v := m.addstarted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartedAtUs clears the value of the "started_at_us" field.
func (m *SessionMutation) ClearStartedAtUs() {
	m.started_at_us = nil
	m.addstarted_at_us = nil
	m.clearedFields[session.FieldStartedAtUs] = struct{}{}
}

// StartedAtUsCleared returns if the "started_at_us" field was cleared in this mutation.
func (m *SessionMutation) StartedAtUsCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAtUs]
	return ok
}

// ResetStartedAtUs resets all changes to the "started_at_us" field.
func (m *SessionMutation) ResetStartedAtUs() {
	m.started_at_us = nil
	m.addstarted_at_us = nil
	delete(m.clearedFields, session.FieldStartedAtUs)
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (m *SessionMutation) SetCompletedAtUs(i int64) {
	m.completed_at_us = &i
	m.addcompleted_at_us = nil
}

// CompletedAtUs returns the value of the "completed_at_us" field in the mutation.
func (m *SessionMutation) CompletedAtUs() (r int64, exists bool) {
	v := m.completed_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAtUs returns the old "completed_at_us" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAtUs: %w", err)
	}
	return oldValue.CompletedAtUs, nil
}

// AddCompletedAtUs adds i to the "completed_at_us" field.
func (m *SessionMutation) AddCompletedAtUs(i int64) {
	if m.addcompleted_at_us != nil {
		*m.addcompleted_at_us += i
	} else {
		m.addcompleted_at_us = &i
	}
}

// AddedCompletedAtUs returns the value that was added to the "completed_at_us" field in this mutation.
func (m *SessionMutation) AddedCompletedAtUs() (r int64, exists bool) {
	v := m.addcompleted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAtUs clears the value of the "completed_at_us" field.
func (m *SessionMutation) ClearCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	m.clearedFields[session.FieldCompletedAtUs] = struct{}{}
}

// CompletedAtUsCleared returns if the "completed_at_us" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtUsCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAtUs]
	return ok
}

// ResetCompletedAtUs resets all changes to the "completed_at_us" field.
func (m *SessionMutation) ResetCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	delete(m.clearedFields, session.FieldCompletedAtUs)
}

// SetFinalAnalysis sets the "final_analysis" field.
func (m *SessionMutation) SetFinalAnalysis(s string) {
	m.final_analysis = &s
}

// FinalAnalysis returns the value of the "final_analysis" field in the mutation.
func (m *SessionMutation) FinalAnalysis() (r string, exists bool) {
	v := m.final_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnalysis returns the old "final_analysis" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalAnalysis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnalysis: %w", err)
	}
	return oldValue.FinalAnalysis, nil
}

// ClearFinalAnalysis clears the value of the "final_analysis" field.
func (m *SessionMutation) ClearFinalAnalysis() {
	m.final_analysis = nil
	m.clearedFields[session.FieldFinalAnalysis] = struct{}{}
}

// FinalAnalysisCleared returns if the "final_analysis" field was cleared in this mutation.
func (m *SessionMutation) FinalAnalysisCleared() bool {
	_, ok := m.clearedFields[session.FieldFinalAnalysis]
	return ok
}

// ResetFinalAnalysis resets all changes to the "final_analysis" field.
func (m *SessionMutation) ResetFinalAnalysis() {
	m.final_analysis = nil
	delete(m.clearedFields, session.FieldFinalAnalysis)
}

// SetFinalAnalysisSummary sets the "final_analysis_summary" field.
func (m *SessionMutation) SetFinalAnalysisSummary(s string) {
	m.final_analysis_summary = &s
}

// FinalAnalysisSummary returns the value of the "final_analysis_summary" field in the mutation.
func (m *SessionMutation) FinalAnalysisSummary() (r string, exists bool) {
	v := m.final_analysis_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalAnalysisSummary returns the old "final_analysis_summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldFinalAnalysisSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalAnalysisSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalAnalysisSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalAnalysisSummary: %w", err)
	}
	return oldValue.FinalAnalysisSummary, nil
}

// ClearFinalAnalysisSummary clears the value of the "final_analysis_summary" field.
func (m *SessionMutation) ClearFinalAnalysisSummary() {
	m.final_analysis_summary = nil
	m.clearedFields[session.FieldFinalAnalysisSummary] = struct{}{}
}

// FinalAnalysisSummaryCleared returns if the "final_analysis_summary" field was cleared in this mutation.
func (m *SessionMutation) FinalAnalysisSummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldFinalAnalysisSummary]
	return ok
}

// ResetFinalAnalysisSummary resets all changes to the "final_analysis_summary" field.
func (m *SessionMutation) ResetFinalAnalysisSummary() {
	m.final_analysis_summary = nil
	delete(m.clearedFields, session.FieldFinalAnalysisSummary)
}

// SetCurrentStageIndex sets the "current_stage_index" field.
func (m *SessionMutation) SetCurrentStageIndex(i int) {
	m.current_stage_index = &i
	m.addcurrent_stage_index = nil
}

// CurrentStageIndex returns the value of the "current_stage_index" field in the mutation.
func (m *SessionMutation) CurrentStageIndex() (r int, exists bool) {
	v := m.current_stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStageIndex returns the old "current_stage_index" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCurrentStageIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStageIndex: %w", err)
	}
	return oldValue.CurrentStageIndex, nil
}

// AddCurrentStageIndex adds i to the "current_stage_index" field.
func (m *SessionMutation) AddCurrentStageIndex(i int) {
	if m.addcurrent_stage_index != nil {
		*m.addcurrent_stage_index += i
	} else {
		m.addcurrent_stage_index = &i
	}
}

// AddedCurrentStageIndex returns the value that was added to the "current_stage_index" field in this mutation.
func (m *SessionMutation) AddedCurrentStageIndex() (r int, exists bool) {
	v := m.addcurrent_stage_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStageIndex clears the value of the "current_stage_index" field.
func (m *SessionMutation) ClearCurrentStageIndex() {
	m.current_stage_index = nil
	m.addcurrent_stage_index = nil
	m.clearedFields[session.FieldCurrentStageIndex] = struct{}{}
}

// CurrentStageIndexCleared returns if the "current_stage_index" field was cleared in this mutation.
func (m *SessionMutation) CurrentStageIndexCleared() bool {
	_, ok := m.clearedFields[session.FieldCurrentStageIndex]
	return ok
}

// ResetCurrentStageIndex resets all changes to the "current_stage_index" field.
func (m *SessionMutation) ResetCurrentStageIndex() {
	m.current_stage_index = nil
	m.addcurrent_stage_index = nil
	delete(m.clearedFields, session.FieldCurrentStageIndex)
}

// SetCurrentStageExecutionID sets the "current_stage_execution_id" field.
func (m *SessionMutation) SetCurrentStageExecutionID(s string) {
	m.current_stage_execution_id = &s
}

// CurrentStageExecutionID returns the value of the "current_stage_execution_id" field in the mutation.
func (m *SessionMutation) CurrentStageExecutionID() (r string, exists bool) {
	v := m.current_stage_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStageExecutionID returns the old "current_stage_execution_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCurrentStageExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStageExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStageExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStageExecutionID: %w", err)
	}
	return oldValue.CurrentStageExecutionID, nil
}

// ClearCurrentStageExecutionID clears the value of the "current_stage_execution_id" field.
func (m *SessionMutation) ClearCurrentStageExecutionID() {
	m.current_stage_execution_id = nil
	m.clearedFields[session.FieldCurrentStageExecutionID] = struct{}{}
}

// CurrentStageExecutionIDCleared returns if the "current_stage_execution_id" field was cleared in this mutation.
func (m *SessionMutation) CurrentStageExecutionIDCleared() bool {
	_, ok := m.clearedFields[session.FieldCurrentStageExecutionID]
	return ok
}

// ResetCurrentStageExecutionID resets all changes to the "current_stage_execution_id" field.
func (m *SessionMutation) ResetCurrentStageExecutionID() {
	m.current_stage_execution_id = nil
	delete(m.clearedFields, session.FieldCurrentStageExecutionID)
}

// SetAuthor sets the "author" field.
func (m *SessionMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *SessionMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *SessionMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[session.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *SessionMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[session.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *SessionMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, session.FieldAuthor)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[session.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[session.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, session.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *SessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *SessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *SessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[session.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *SessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *SessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, session.FieldPodID)
}

// SetSlackMessageFingerprint sets the "slack_message_fingerprint" field.
func (m *SessionMutation) SetSlackMessageFingerprint(s string) {
	m.slack_message_fingerprint = &s
}

// SlackMessageFingerprint returns the value of the "slack_message_fingerprint" field in the mutation.
func (m *SessionMutation) SlackMessageFingerprint() (r string, exists bool) {
	v := m.slack_message_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSlackMessageFingerprint returns the old "slack_message_fingerprint" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSlackMessageFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlackMessageFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlackMessageFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlackMessageFingerprint: %w", err)
	}
	return oldValue.SlackMessageFingerprint, nil
}

// ClearSlackMessageFingerprint clears the value of the "slack_message_fingerprint" field.
func (m *SessionMutation) ClearSlackMessageFingerprint() {
	m.slack_message_fingerprint = nil
	m.clearedFields[session.FieldSlackMessageFingerprint] = struct{}{}
}

// SlackMessageFingerprintCleared returns if the "slack_message_fingerprint" field was cleared in this mutation.
func (m *SessionMutation) SlackMessageFingerprintCleared() bool {
	_, ok := m.clearedFields[session.FieldSlackMessageFingerprint]
	return ok
}

// ResetSlackMessageFingerprint resets all changes to the "slack_message_fingerprint" field.
func (m *SessionMutation) ResetSlackMessageFingerprint() {
	m.slack_message_fingerprint = nil
	delete(m.clearedFields, session.FieldSlackMessageFingerprint)
}

// SetLastInteractionAtUs sets the "last_interaction_at_us" field.
func (m *SessionMutation) SetLastInteractionAtUs(i int64) {
	m.last_interaction_at_us = &i
	m.addlast_interaction_at_us = nil
}

// LastInteractionAtUs returns the value of the "last_interaction_at_us" field in the mutation.
func (m *SessionMutation) LastInteractionAtUs() (r int64, exists bool) {
	v := m.last_interaction_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAtUs returns the old "last_interaction_at_us" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLastInteractionAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAtUs: %w", err)
	}
	return oldValue.LastInteractionAtUs, nil
}

// AddLastInteractionAtUs adds i to the "last_interaction_at_us" field.
func (m *SessionMutation) AddLastInteractionAtUs(i int64) {
	if m.addlast_interaction_at_us != nil {
		*m.addlast_interaction_at_us += i
	} else {
		m.addlast_interaction_at_us = &i
	}
}

// AddedLastInteractionAtUs returns the value that was added to the "last_interaction_at_us" field in this mutation.
func (m *SessionMutation) AddedLastInteractionAtUs() (r int64, exists bool) {
	v := m.addlast_interaction_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastInteractionAtUs clears the value of the "last_interaction_at_us" field.
func (m *SessionMutation) ClearLastInteractionAtUs() {
	m.last_interaction_at_us = nil
	m.addlast_interaction_at_us = nil
	m.clearedFields[session.FieldLastInteractionAtUs] = struct{}{}
}

// LastInteractionAtUsCleared returns if the "last_interaction_at_us" field was cleared in this mutation.
func (m *SessionMutation) LastInteractionAtUsCleared() bool {
	_, ok := m.clearedFields[session.FieldLastInteractionAtUs]
	return ok
}

// ResetLastInteractionAtUs resets all changes to the "last_interaction_at_us" field.
func (m *SessionMutation) ResetLastInteractionAtUs() {
	m.last_interaction_at_us = nil
	m.addlast_interaction_at_us = nil
	delete(m.clearedFields, session.FieldLastInteractionAtUs)
}

// AddStageExecutionIDs adds the "stage_executions" edge to the StageExecution entity by ids.
func (m *SessionMutation) AddStageExecutionIDs(ids ...string) {
	if m.stage_executions == nil {
		m.stage_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_executions[ids[i]] = struct{}{}
	}
}

// ClearStageExecutions clears the "stage_executions" edge to the StageExecution entity.
func (m *SessionMutation) ClearStageExecutions() {
	m.clearedstage_executions = true
}

// StageExecutionsCleared reports if the "stage_executions" edge to the StageExecution entity was cleared.
func (m *SessionMutation) StageExecutionsCleared() bool {
	return m.clearedstage_executions
}

// RemoveStageExecutionIDs removes the "stage_executions" edge to the StageExecution entity by IDs.
func (m *SessionMutation) RemoveStageExecutionIDs(ids ...string) {
	if m.removedstage_executions == nil {
		m.removedstage_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_executions, ids[i])
		m.removedstage_executions[ids[i]] = struct{}{}
	}
}

// RemovedStageExecutions returns the removed IDs of the "stage_executions" edge to the StageExecution entity.
func (m *SessionMutation) RemovedStageExecutionsIDs() (ids []string) {
	for id := range m.removedstage_executions {
		ids = append(ids, id)
	}
	return
}

// StageExecutionsIDs returns the "stage_executions" edge IDs in the mutation.
func (m *SessionMutation) StageExecutionsIDs() (ids []string) {
	for id := range m.stage_executions {
		ids = append(ids, id)
	}
	return
}

// ResetStageExecutions resets all changes to the "stage_executions" edge.
func (m *SessionMutation) ResetStageExecutions() {
	m.stage_executions = nil
	m.clearedstage_executions = false
	m.removedstage_executions = nil
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *SessionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *SessionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *SessionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *SessionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *SessionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *SessionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *SessionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by ids.
func (m *SessionMutation) AddMcpInteractionIDs(ids ...string) {
	if m.mcp_interactions == nil {
		m.mcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_interactions[ids[i]] = struct{}{}
	}
}

// ClearMcpInteractions clears the "mcp_interactions" edge to the MCPInteraction entity.
func (m *SessionMutation) ClearMcpInteractions() {
	m.clearedmcp_interactions = true
}

// McpInteractionsCleared reports if the "mcp_interactions" edge to the MCPInteraction entity was cleared.
func (m *SessionMutation) McpInteractionsCleared() bool {
	return m.clearedmcp_interactions
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (m *SessionMutation) RemoveMcpInteractionIDs(ids ...string) {
	if m.removedmcp_interactions == nil {
		m.removedmcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_interactions, ids[i])
		m.removedmcp_interactions[ids[i]] = struct{}{}
	}
}

// RemovedMcpInteractions returns the removed IDs of the "mcp_interactions" edge to the MCPInteraction entity.
func (m *SessionMutation) RemovedMcpInteractionsIDs() (ids []string) {
	for id := range m.removedmcp_interactions {
		ids = append(ids, id)
	}
	return
}

// McpInteractionsIDs returns the "mcp_interactions" edge IDs in the mutation.
func (m *SessionMutation) McpInteractionsIDs() (ids []string) {
	for id := range m.mcp_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetMcpInteractions resets all changes to the "mcp_interactions" edge.
func (m *SessionMutation) ResetMcpInteractions() {
	m.mcp_interactions = nil
	m.clearedmcp_interactions = false
	m.removedmcp_interactions = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.alert_type != nil {
		fields = append(fields, session.FieldAlertType)
	}
	if m.alert_data != nil {
		fields = append(fields, session.FieldAlertData)
	}
	if m.runbook_url != nil {
		fields = append(fields, session.FieldRunbookURL)
	}
	if m.runbook != nil {
		fields = append(fields, session.FieldRunbook)
	}
	if m.chain_id != nil {
		fields = append(fields, session.FieldChainID)
	}
	if m.chain_config != nil {
		fields = append(fields, session.FieldChainConfig)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.created_at_us != nil {
		fields = append(fields, session.FieldCreatedAtUs)
	}
	if m.started_at_us != nil {
		fields = append(fields, session.FieldStartedAtUs)
	}
	if m.completed_at_us != nil {
		fields = append(fields, session.FieldCompletedAtUs)
	}
	if m.final_analysis != nil {
		fields = append(fields, session.FieldFinalAnalysis)
	}
	if m.final_analysis_summary != nil {
		fields = append(fields, session.FieldFinalAnalysisSummary)
	}
	if m.current_stage_index != nil {
		fields = append(fields, session.FieldCurrentStageIndex)
	}
	if m.current_stage_execution_id != nil {
		fields = append(fields, session.FieldCurrentStageExecutionID)
	}
	if m.author != nil {
		fields = append(fields, session.FieldAuthor)
	}
	if m.error_message != nil {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, session.FieldPodID)
	}
	if m.slack_message_fingerprint != nil {
		fields = append(fields, session.FieldSlackMessageFingerprint)
	}
	if m.last_interaction_at_us != nil {
		fields = append(fields, session.FieldLastInteractionAtUs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldAlertType:
		return m.AlertType()
	case session.FieldAlertData:
		return m.AlertData()
	case session.FieldRunbookURL:
		return m.RunbookURL()
	case session.FieldRunbook:
		return m.Runbook()
	case session.FieldChainID:
		return m.ChainID()
	case session.FieldChainConfig:
		return m.ChainConfig()
	case session.FieldStatus:
		return m.Status()
	case session.FieldCreatedAtUs:
		return m.CreatedAtUs()
	case session.FieldStartedAtUs:
		return m.StartedAtUs()
	case session.FieldCompletedAtUs:
		return m.CompletedAtUs()
	case session.FieldFinalAnalysis:
		return m.FinalAnalysis()
	case session.FieldFinalAnalysisSummary:
		return m.FinalAnalysisSummary()
	case session.FieldCurrentStageIndex:
		return m.CurrentStageIndex()
	case session.FieldCurrentStageExecutionID:
		return m.CurrentStageExecutionID()
	case session.FieldAuthor:
		return m.Author()
	case session.FieldErrorMessage:
		return m.ErrorMessage()
	case session.FieldPodID:
		return m.PodID()
	case session.FieldSlackMessageFingerprint:
		return m.SlackMessageFingerprint()
	case session.FieldLastInteractionAtUs:
		return m.LastInteractionAtUs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldAlertType:
		return m.OldAlertType(ctx)
	case session.FieldAlertData:
		return m.OldAlertData(ctx)
	case session.FieldRunbookURL:
		return m.OldRunbookURL(ctx)
	case session.FieldRunbook:
		return m.OldRunbook(ctx)
	case session.FieldChainID:
		return m.OldChainID(ctx)
	case session.FieldChainConfig:
		return m.OldChainConfig(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldCreatedAtUs:
		return m.OldCreatedAtUs(ctx)
	case session.FieldStartedAtUs:
		return m.OldStartedAtUs(ctx)
	case session.FieldCompletedAtUs:
		return m.OldCompletedAtUs(ctx)
	case session.FieldFinalAnalysis:
		return m.OldFinalAnalysis(ctx)
	case session.FieldFinalAnalysisSummary:
		return m.OldFinalAnalysisSummary(ctx)
	case session.FieldCurrentStageIndex:
		return m.OldCurrentStageIndex(ctx)
	case session.FieldCurrentStageExecutionID:
		return m.OldCurrentStageExecutionID(ctx)
	case session.FieldAuthor:
		return m.OldAuthor(ctx)
	case session.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case session.FieldPodID:
		return m.OldPodID(ctx)
	case session.FieldSlackMessageFingerprint:
		return m.OldSlackMessageFingerprint(ctx)
	case session.FieldLastInteractionAtUs:
		return m.OldLastInteractionAtUs(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldAlertType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertType(v)
		return nil
	case session.FieldAlertData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertData(v)
		return nil
	case session.FieldRunbookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunbookURL(v)
		return nil
	case session.FieldRunbook:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunbook(v)
		return nil
	case session.FieldChainID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainID(v)
		return nil
	case session.FieldChainConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChainConfig(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldCreatedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtUs(v)
		return nil
	case session.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAtUs(v)
		return nil
	case session.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAtUs(v)
		return nil
	case session.FieldFinalAnalysis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnalysis(v)
		return nil
	case session.FieldFinalAnalysisSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalAnalysisSummary(v)
		return nil
	case session.FieldCurrentStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStageIndex(v)
		return nil
	case session.FieldCurrentStageExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStageExecutionID(v)
		return nil
	case session.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case session.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case session.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case session.FieldSlackMessageFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlackMessageFingerprint(v)
		return nil
	case session.FieldLastInteractionAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAtUs(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at_us != nil {
		fields = append(fields, session.FieldCreatedAtUs)
	}
	if m.addstarted_at_us != nil {
		fields = append(fields, session.FieldStartedAtUs)
	}
	if m.addcompleted_at_us != nil {
		fields = append(fields, session.FieldCompletedAtUs)
	}
	if m.addcurrent_stage_index != nil {
		fields = append(fields, session.FieldCurrentStageIndex)
	}
	if m.addlast_interaction_at_us != nil {
		fields = append(fields, session.FieldLastInteractionAtUs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAtUs:
		return m.AddedCreatedAtUs()
	case session.FieldStartedAtUs:
		return m.AddedStartedAtUs()
	case session.FieldCompletedAtUs:
		return m.AddedCompletedAtUs()
	case session.FieldCurrentStageIndex:
		return m.AddedCurrentStageIndex()
	case session.FieldLastInteractionAtUs:
		return m.AddedLastInteractionAtUs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtUs(v)
		return nil
	case session.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAtUs(v)
		return nil
	case session.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAtUs(v)
		return nil
	case session.FieldCurrentStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStageIndex(v)
		return nil
	case session.FieldLastInteractionAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastInteractionAtUs(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldRunbookURL) {
		fields = append(fields, session.FieldRunbookURL)
	}
	if m.FieldCleared(session.FieldRunbook) {
		fields = append(fields, session.FieldRunbook)
	}
	if m.FieldCleared(session.FieldChainConfig) {
		fields = append(fields, session.FieldChainConfig)
	}
	if m.FieldCleared(session.FieldStartedAtUs) {
		fields = append(fields, session.FieldStartedAtUs)
	}
	if m.FieldCleared(session.FieldCompletedAtUs) {
		fields = append(fields, session.FieldCompletedAtUs)
	}
	if m.FieldCleared(session.FieldFinalAnalysis) {
		fields = append(fields, session.FieldFinalAnalysis)
	}
	if m.FieldCleared(session.FieldFinalAnalysisSummary) {
		fields = append(fields, session.FieldFinalAnalysisSummary)
	}
	if m.FieldCleared(session.FieldCurrentStageIndex) {
		fields = append(fields, session.FieldCurrentStageIndex)
	}
	if m.FieldCleared(session.FieldCurrentStageExecutionID) {
		fields = append(fields, session.FieldCurrentStageExecutionID)
	}
	if m.FieldCleared(session.FieldAuthor) {
		fields = append(fields, session.FieldAuthor)
	}
	if m.FieldCleared(session.FieldErrorMessage) {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.FieldCleared(session.FieldPodID) {
		fields = append(fields, session.FieldPodID)
	}
	if m.FieldCleared(session.FieldSlackMessageFingerprint) {
		fields = append(fields, session.FieldSlackMessageFingerprint)
	}
	if m.FieldCleared(session.FieldLastInteractionAtUs) {
		fields = append(fields, session.FieldLastInteractionAtUs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldRunbookURL:
		m.ClearRunbookURL()
		return nil
	case session.FieldRunbook:
		m.ClearRunbook()
		return nil
	case session.FieldChainConfig:
		m.ClearChainConfig()
		return nil
	case session.FieldStartedAtUs:
		m.ClearStartedAtUs()
		return nil
	case session.FieldCompletedAtUs:
		m.ClearCompletedAtUs()
		return nil
	case session.FieldFinalAnalysis:
		m.ClearFinalAnalysis()
		return nil
	case session.FieldFinalAnalysisSummary:
		m.ClearFinalAnalysisSummary()
		return nil
	case session.FieldCurrentStageIndex:
		m.ClearCurrentStageIndex()
		return nil
	case session.FieldCurrentStageExecutionID:
		m.ClearCurrentStageExecutionID()
		return nil
	case session.FieldAuthor:
		m.ClearAuthor()
		return nil
	case session.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case session.FieldPodID:
		m.ClearPodID()
		return nil
	case session.FieldSlackMessageFingerprint:
		m.ClearSlackMessageFingerprint()
		return nil
	case session.FieldLastInteractionAtUs:
		m.ClearLastInteractionAtUs()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldAlertType:
		m.ResetAlertType()
		return nil
	case session.FieldAlertData:
		m.ResetAlertData()
		return nil
	case session.FieldRunbookURL:
		m.ResetRunbookURL()
		return nil
	case session.FieldRunbook:
		m.ResetRunbook()
		return nil
	case session.FieldChainID:
		m.ResetChainID()
		return nil
	case session.FieldChainConfig:
		m.ResetChainConfig()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldCreatedAtUs:
		m.ResetCreatedAtUs()
		return nil
	case session.FieldStartedAtUs:
		m.ResetStartedAtUs()
		return nil
	case session.FieldCompletedAtUs:
		m.ResetCompletedAtUs()
		return nil
	case session.FieldFinalAnalysis:
		m.ResetFinalAnalysis()
		return nil
	case session.FieldFinalAnalysisSummary:
		m.ResetFinalAnalysisSummary()
		return nil
	case session.FieldCurrentStageIndex:
		m.ResetCurrentStageIndex()
		return nil
	case session.FieldCurrentStageExecutionID:
		m.ResetCurrentStageExecutionID()
		return nil
	case session.FieldAuthor:
		m.ResetAuthor()
		return nil
	case session.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case session.FieldPodID:
		m.ResetPodID()
		return nil
	case session.FieldSlackMessageFingerprint:
		m.ResetSlackMessageFingerprint()
		return nil
	case session.FieldLastInteractionAtUs:
		m.ResetLastInteractionAtUs()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.stage_executions != nil {
		edges = append(edges, session.EdgeStageExecutions)
	}
	if m.llm_interactions != nil {
		edges = append(edges, session.EdgeLlmInteractions)
	}
	if m.mcp_interactions != nil {
		edges = append(edges, session.EdgeMcpInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.stage_executions))
		for id := range m.stage_executions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.mcp_interactions))
		for id := range m.mcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedstage_executions != nil {
		edges = append(edges, session.EdgeStageExecutions)
	}
	if m.removedllm_interactions != nil {
		edges = append(edges, session.EdgeLlmInteractions)
	}
	if m.removedmcp_interactions != nil {
		edges = append(edges, session.EdgeMcpInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeStageExecutions:
		ids := make([]ent.Value, 0, len(m.removedstage_executions))
		for id := range m.removedstage_executions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.removedmcp_interactions))
		for id := range m.removedmcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedstage_executions {
		edges = append(edges, session.EdgeStageExecutions)
	}
	if m.clearedllm_interactions {
		edges = append(edges, session.EdgeLlmInteractions)
	}
	if m.clearedmcp_interactions {
		edges = append(edges, session.EdgeMcpInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeStageExecutions:
		return m.clearedstage_executions
	case session.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case session.EdgeMcpInteractions:
		return m.clearedmcp_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeStageExecutions:
		m.ResetStageExecutions()
		return nil
	case session.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case session.EdgeMcpInteractions:
		m.ResetMcpInteractions()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// StageExecutionMutation represents an operation that mutates the StageExecution nodes in the graph.
type StageExecutionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	stage_index                *int
	addstage_index             *int
	stage_id                   *string
	stage_name                 *string
	agent                      *string
	status                     *stageexecution.Status
	started_at_us              *int64
	addstarted_at_us           *int64
	completed_at_us            *int64
	addcompleted_at_us         *int64
	duration_ms                *int
	addduration_ms             *int
	current_iteration          *int
	addcurrent_iteration       *int
	stage_output               *map[string]interface{}
	error_message              *string
	parent_stage_execution_id  *string
	parallel_index             *int
	addparallel_index          *int
	parallel_type              *stageexecution.ParallelType
	expected_parallel_count    *int
	addexpected_parallel_count *int
	clearedFields              map[string]struct{}
	session                    *string
	clearedsession             bool
	llm_interactions           map[string]struct{}
	removedllm_interactions    map[string]struct{}
	clearedllm_interactions    bool
	mcp_interactions           map[string]struct{}
	removedmcp_interactions    map[string]struct{}
	clearedmcp_interactions    bool
	done                       bool
	oldValue                   func(context.Context) (*StageExecution, error)
	predicates                 []predicate.StageExecution
}

var _ ent.Mutation = (*StageExecutionMutation)(nil)

// stageexecutionOption allows management of the mutation configuration using functional options.
type stageexecutionOption func(*StageExecutionMutation)

// newStageExecutionMutation creates new mutation for the StageExecution entity.
func newStageExecutionMutation(c config, op Op, opts ...stageexecutionOption) *StageExecutionMutation {
	m := &StageExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStageExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageExecutionID sets the ID field of the mutation.
func withStageExecutionID(id string) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StageExecution
		)
		m.oldValue = func(ctx context.Context) (*StageExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageExecution sets the old StageExecution of the mutation.
func withStageExecution(node *StageExecution) stageexecutionOption {
	return func(m *StageExecutionMutation) {
		m.oldValue = func(context.Context) (*StageExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageExecution entities.
func (m *StageExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StageExecutionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StageExecutionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StageExecutionMutation) ResetSessionID() {
	m.session = nil
}

// SetStageIndex sets the "stage_index" field.
func (m *StageExecutionMutation) SetStageIndex(i int) {
	m.stage_index = &i
	m.addstage_index = nil
}

// StageIndex returns the value of the "stage_index" field in the mutation.
func (m *StageExecutionMutation) StageIndex() (r int, exists bool) {
	v := m.stage_index
	if v == nil {
		return
	}
	return *v, true
}

// OldStageIndex returns the old "stage_index" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageIndex: %w", err)
	}
	return oldValue.StageIndex, nil
}

// AddStageIndex adds i to the "stage_index" field.
func (m *StageExecutionMutation) AddStageIndex(i int) {
	if m.addstage_index != nil {
		*m.addstage_index += i
	} else {
		m.addstage_index = &i
	}
}

// AddedStageIndex returns the value that was added to the "stage_index" field in this mutation.
func (m *StageExecutionMutation) AddedStageIndex() (r int, exists bool) {
	v := m.addstage_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageIndex resets all changes to the "stage_index" field.
func (m *StageExecutionMutation) ResetStageIndex() {
	m.stage_index = nil
	m.addstage_index = nil
}

// SetStageID sets the "stage_id" field.
func (m *StageExecutionMutation) SetStageID(s string) {
	m.stage_id = &s
}

// StageID returns the value of the "stage_id" field in the mutation.
func (m *StageExecutionMutation) StageID() (r string, exists bool) {
	v := m.stage_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStageID returns the old "stage_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageID: %w", err)
	}
	return oldValue.StageID, nil
}

// ResetStageID resets all changes to the "stage_id" field.
func (m *StageExecutionMutation) ResetStageID() {
	m.stage_id = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageExecutionMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageExecutionMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageExecutionMutation) ResetStageName() {
	m.stage_name = nil
}

// SetAgent sets the "agent" field.
func (m *StageExecutionMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *StageExecutionMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ResetAgent resets all changes to the "agent" field.
func (m *StageExecutionMutation) ResetAgent() {
	m.agent = nil
}

// SetStatus sets the "status" field.
func (m *StageExecutionMutation) SetStatus(s stageexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StageExecutionMutation) Status() (r stageexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStatus(ctx context.Context) (v stageexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StageExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAtUs sets the "started_at_us" field.
func (m *StageExecutionMutation) SetStartedAtUs(i int64) {
	m.started_at_us = &i
	m.addstarted_at_us = nil
}

// StartedAtUs returns the value of the "started_at_us" field in the mutation.
func (m *StageExecutionMutation) StartedAtUs() (r int64, exists bool) {
	v := m.started_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAtUs returns the old "started_at_us" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStartedAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAtUs: %w", err)
	}
	return oldValue.StartedAtUs, nil
}

// AddStartedAtUs adds i to the "started_at_us" field.
func (m *StageExecutionMutation) AddStartedAtUs(i int64) {
	if m.addstarted_at_us != nil {
		*m.addstarted_at_us += i
	} else {
		m.addstarted_at_us = &i
	}
}

// AddedStartedAtUs returns the value that was added to the "started_at_us" field in this mutation.
func (m *StageExecutionMutation) AddedStartedAtUs() (r int64, exists bool) {
	v := m.addstarted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearStartedAtUs clears the value of the "started_at_us" field.
func (m *StageExecutionMutation) ClearStartedAtUs() {
	m.started_at_us = nil
	m.addstarted_at_us = nil
	m.clearedFields[stageexecution.FieldStartedAtUs] = struct{}{}
}

// StartedAtUsCleared returns if the "started_at_us" field was cleared in this mutation.
func (m *StageExecutionMutation) StartedAtUsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStartedAtUs]
	return ok
}

// ResetStartedAtUs resets all changes to the "started_at_us" field.
func (m *StageExecutionMutation) ResetStartedAtUs() {
	m.started_at_us = nil
	m.addstarted_at_us = nil
	delete(m.clearedFields, stageexecution.FieldStartedAtUs)
}

// SetCompletedAtUs sets the "completed_at_us" field.
func (m *StageExecutionMutation) SetCompletedAtUs(i int64) {
	m.completed_at_us = &i
	m.addcompleted_at_us = nil
}

// CompletedAtUs returns the value of the "completed_at_us" field in the mutation.
func (m *StageExecutionMutation) CompletedAtUs() (r int64, exists bool) {
	v := m.completed_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAtUs returns the old "completed_at_us" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCompletedAtUs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAtUs: %w", err)
	}
	return oldValue.CompletedAtUs, nil
}

// AddCompletedAtUs adds i to the "completed_at_us" field.
func (m *StageExecutionMutation) AddCompletedAtUs(i int64) {
	if m.addcompleted_at_us != nil {
		*m.addcompleted_at_us += i
	} else {
		m.addcompleted_at_us = &i
	}
}

// AddedCompletedAtUs returns the value that was added to the "completed_at_us" field in this mutation.
func (m *StageExecutionMutation) AddedCompletedAtUs() (r int64, exists bool) {
	v := m.addcompleted_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAtUs clears the value of the "completed_at_us" field.
func (m *StageExecutionMutation) ClearCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	m.clearedFields[stageexecution.FieldCompletedAtUs] = struct{}{}
}

// CompletedAtUsCleared returns if the "completed_at_us" field was cleared in this mutation.
func (m *StageExecutionMutation) CompletedAtUsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCompletedAtUs]
	return ok
}

// ResetCompletedAtUs resets all changes to the "completed_at_us" field.
func (m *StageExecutionMutation) ResetCompletedAtUs() {
	m.completed_at_us = nil
	m.addcompleted_at_us = nil
	delete(m.clearedFields, stageexecution.FieldCompletedAtUs)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *StageExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[stageexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *StageExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, stageexecution.FieldDurationMs)
}

// SetCurrentIteration sets the "current_iteration" field.
func (m *StageExecutionMutation) SetCurrentIteration(i int) {
	m.current_iteration = &i
	m.addcurrent_iteration = nil
}

// CurrentIteration returns the value of the "current_iteration" field in the mutation.
func (m *StageExecutionMutation) CurrentIteration() (r int, exists bool) {
	v := m.current_iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIteration returns the old "current_iteration" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldCurrentIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIteration: %w", err)
	}
	return oldValue.CurrentIteration, nil
}

// AddCurrentIteration adds i to the "current_iteration" field.
func (m *StageExecutionMutation) AddCurrentIteration(i int) {
	if m.addcurrent_iteration != nil {
		*m.addcurrent_iteration += i
	} else {
		m.addcurrent_iteration = &i
	}
}

// AddedCurrentIteration returns the value that was added to the "current_iteration" field in this mutation.
func (m *StageExecutionMutation) AddedCurrentIteration() (r int, exists bool) {
	v := m.addcurrent_iteration
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentIteration clears the value of the "current_iteration" field.
func (m *StageExecutionMutation) ClearCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
	m.clearedFields[stageexecution.FieldCurrentIteration] = struct{}{}
}

// CurrentIterationCleared returns if the "current_iteration" field was cleared in this mutation.
func (m *StageExecutionMutation) CurrentIterationCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldCurrentIteration]
	return ok
}

// ResetCurrentIteration resets all changes to the "current_iteration" field.
func (m *StageExecutionMutation) ResetCurrentIteration() {
	m.current_iteration = nil
	m.addcurrent_iteration = nil
	delete(m.clearedFields, stageexecution.FieldCurrentIteration)
}

// SetStageOutput sets the "stage_output" field.
func (m *StageExecutionMutation) SetStageOutput(value map[string]interface{}) {
	m.stage_output = &value
}

// StageOutput returns the value of the "stage_output" field in the mutation.
func (m *StageExecutionMutation) StageOutput() (r map[string]interface{}, exists bool) {
	v := m.stage_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStageOutput returns the old "stage_output" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldStageOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageOutput: %w", err)
	}
	return oldValue.StageOutput, nil
}

// ClearStageOutput clears the value of the "stage_output" field.
func (m *StageExecutionMutation) ClearStageOutput() {
	m.stage_output = nil
	m.clearedFields[stageexecution.FieldStageOutput] = struct{}{}
}

// StageOutputCleared returns if the "stage_output" field was cleared in this mutation.
func (m *StageExecutionMutation) StageOutputCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldStageOutput]
	return ok
}

// ResetStageOutput resets all changes to the "stage_output" field.
func (m *StageExecutionMutation) ResetStageOutput() {
	m.stage_output = nil
	delete(m.clearedFields, stageexecution.FieldStageOutput)
}

// SetErrorMessage sets the "error_message" field.
func (m *StageExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StageExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StageExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stageexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StageExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StageExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stageexecution.FieldErrorMessage)
}

// SetParentStageExecutionID sets the "parent_stage_execution_id" field.
func (m *StageExecutionMutation) SetParentStageExecutionID(s string) {
	m.parent_stage_execution_id = &s
}

// ParentStageExecutionID returns the value of the "parent_stage_execution_id" field in the mutation.
func (m *StageExecutionMutation) ParentStageExecutionID() (r string, exists bool) {
	v := m.parent_stage_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentStageExecutionID returns the old "parent_stage_execution_id" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldParentStageExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentStageExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentStageExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentStageExecutionID: %w", err)
	}
	return oldValue.ParentStageExecutionID, nil
}

// ClearParentStageExecutionID clears the value of the "parent_stage_execution_id" field.
func (m *StageExecutionMutation) ClearParentStageExecutionID() {
	m.parent_stage_execution_id = nil
	m.clearedFields[stageexecution.FieldParentStageExecutionID] = struct{}{}
}

// ParentStageExecutionIDCleared returns if the "parent_stage_execution_id" field was cleared in this mutation.
func (m *StageExecutionMutation) ParentStageExecutionIDCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldParentStageExecutionID]
	return ok
}

// ResetParentStageExecutionID resets all changes to the "parent_stage_execution_id" field.
func (m *StageExecutionMutation) ResetParentStageExecutionID() {
	m.parent_stage_execution_id = nil
	delete(m.clearedFields, stageexecution.FieldParentStageExecutionID)
}

// SetParallelIndex sets the "parallel_index" field.
func (m *StageExecutionMutation) SetParallelIndex(i int) {
	m.parallel_index = &i
	m.addparallel_index = nil
}

// ParallelIndex returns the value of the "parallel_index" field in the mutation.
func (m *StageExecutionMutation) ParallelIndex() (r int, exists bool) {
	v := m.parallel_index
	if v == nil {
		return
	}
	return *v, true
}

// OldParallelIndex returns the old "parallel_index" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldParallelIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParallelIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParallelIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParallelIndex: %w", err)
	}
	return oldValue.ParallelIndex, nil
}

// AddParallelIndex adds i to the "parallel_index" field.
func (m *StageExecutionMutation) AddParallelIndex(i int) {
	if m.addparallel_index != nil {
		*m.addparallel_index += i
	} else {
		m.addparallel_index = &i
	}
}

// AddedParallelIndex returns the value that was added to the "parallel_index" field in this mutation.
func (m *StageExecutionMutation) AddedParallelIndex() (r int, exists bool) {
	v := m.addparallel_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetParallelIndex resets all changes to the "parallel_index" field.
func (m *StageExecutionMutation) ResetParallelIndex() {
	m.parallel_index = nil
	m.addparallel_index = nil
}

// SetParallelType sets the "parallel_type" field.
func (m *StageExecutionMutation) SetParallelType(st stageexecution.ParallelType) {
	m.parallel_type = &st
}

// ParallelType returns the value of the "parallel_type" field in the mutation.
func (m *StageExecutionMutation) ParallelType() (r stageexecution.ParallelType, exists bool) {
	v := m.parallel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParallelType returns the old "parallel_type" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldParallelType(ctx context.Context) (v stageexecution.ParallelType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParallelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParallelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParallelType: %w", err)
	}
	return oldValue.ParallelType, nil
}

// ResetParallelType resets all changes to the "parallel_type" field.
func (m *StageExecutionMutation) ResetParallelType() {
	m.parallel_type = nil
}

// SetExpectedParallelCount sets the "expected_parallel_count" field.
func (m *StageExecutionMutation) SetExpectedParallelCount(i int) {
	m.expected_parallel_count = &i
	m.addexpected_parallel_count = nil
}

// ExpectedParallelCount returns the value of the "expected_parallel_count" field in the mutation.
func (m *StageExecutionMutation) ExpectedParallelCount() (r int, exists bool) {
	v := m.expected_parallel_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedParallelCount returns the old "expected_parallel_count" field's value of the StageExecution entity.
// If the StageExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageExecutionMutation) OldExpectedParallelCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedParallelCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedParallelCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedParallelCount: %w", err)
	}
	return oldValue.ExpectedParallelCount, nil
}

// AddExpectedParallelCount adds i to the "expected_parallel_count" field.
func (m *StageExecutionMutation) AddExpectedParallelCount(i int) {
	if m.addexpected_parallel_count != nil {
		*m.addexpected_parallel_count += i
	} else {
		m.addexpected_parallel_count = &i
	}
}

// AddedExpectedParallelCount returns the value that was added to the "expected_parallel_count" field in this mutation.
func (m *StageExecutionMutation) AddedExpectedParallelCount() (r int, exists bool) {
	v := m.addexpected_parallel_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpectedParallelCount clears the value of the "expected_parallel_count" field.
func (m *StageExecutionMutation) ClearExpectedParallelCount() {
	m.expected_parallel_count = nil
	m.addexpected_parallel_count = nil
	m.clearedFields[stageexecution.FieldExpectedParallelCount] = struct{}{}
}

// ExpectedParallelCountCleared returns if the "expected_parallel_count" field was cleared in this mutation.
func (m *StageExecutionMutation) ExpectedParallelCountCleared() bool {
	_, ok := m.clearedFields[stageexecution.FieldExpectedParallelCount]
	return ok
}

// ResetExpectedParallelCount resets all changes to the "expected_parallel_count" field.
func (m *StageExecutionMutation) ResetExpectedParallelCount() {
	m.expected_parallel_count = nil
	m.addexpected_parallel_count = nil
	delete(m.clearedFields, stageexecution.FieldExpectedParallelCount)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *StageExecutionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[stageexecution.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *StageExecutionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *StageExecutionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *StageExecutionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *StageExecutionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *StageExecutionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *StageExecutionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *StageExecutionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *StageExecutionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *StageExecutionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *StageExecutionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddMcpInteractionIDs adds the "mcp_interactions" edge to the MCPInteraction entity by ids.
func (m *StageExecutionMutation) AddMcpInteractionIDs(ids ...string) {
	if m.mcp_interactions == nil {
		m.mcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_interactions[ids[i]] = struct{}{}
	}
}

// ClearMcpInteractions clears the "mcp_interactions" edge to the MCPInteraction entity.
func (m *StageExecutionMutation) ClearMcpInteractions() {
	m.clearedmcp_interactions = true
}

// McpInteractionsCleared reports if the "mcp_interactions" edge to the MCPInteraction entity was cleared.
func (m *StageExecutionMutation) McpInteractionsCleared() bool {
	return m.clearedmcp_interactions
}

// RemoveMcpInteractionIDs removes the "mcp_interactions" edge to the MCPInteraction entity by IDs.
func (m *StageExecutionMutation) RemoveMcpInteractionIDs(ids ...string) {
	if m.removedmcp_interactions == nil {
		m.removedmcp_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_interactions, ids[i])
		m.removedmcp_interactions[ids[i]] = struct{}{}
	}
}

// RemovedMcpInteractions returns the removed IDs of the "mcp_interactions" edge to the MCPInteraction entity.
func (m *StageExecutionMutation) RemovedMcpInteractionsIDs() (ids []string) {
	for id := range m.removedmcp_interactions {
		ids = append(ids, id)
	}
	return
}

// McpInteractionsIDs returns the "mcp_interactions" edge IDs in the mutation.
func (m *StageExecutionMutation) McpInteractionsIDs() (ids []string) {
	for id := range m.mcp_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetMcpInteractions resets all changes to the "mcp_interactions" edge.
func (m *StageExecutionMutation) ResetMcpInteractions() {
	m.mcp_interactions = nil
	m.clearedmcp_interactions = false
	m.removedmcp_interactions = nil
}

// Where appends a list predicates to the StageExecutionMutation builder.
func (m *StageExecutionMutation) Where(ps ...predicate.StageExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageExecution).
func (m *StageExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageExecutionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.session != nil {
		fields = append(fields, stageexecution.FieldSessionID)
	}
	if m.stage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.stage_id != nil {
		fields = append(fields, stageexecution.FieldStageID)
	}
	if m.stage_name != nil {
		fields = append(fields, stageexecution.FieldStageName)
	}
	if m.agent != nil {
		fields = append(fields, stageexecution.FieldAgent)
	}
	if m.status != nil {
		fields = append(fields, stageexecution.FieldStatus)
	}
	if m.started_at_us != nil {
		fields = append(fields, stageexecution.FieldStartedAtUs)
	}
	if m.completed_at_us != nil {
		fields = append(fields, stageexecution.FieldCompletedAtUs)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.current_iteration != nil {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	if m.stage_output != nil {
		fields = append(fields, stageexecution.FieldStageOutput)
	}
	if m.error_message != nil {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.parent_stage_execution_id != nil {
		fields = append(fields, stageexecution.FieldParentStageExecutionID)
	}
	if m.parallel_index != nil {
		fields = append(fields, stageexecution.FieldParallelIndex)
	}
	if m.parallel_type != nil {
		fields = append(fields, stageexecution.FieldParallelType)
	}
	if m.expected_parallel_count != nil {
		fields = append(fields, stageexecution.FieldExpectedParallelCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.SessionID()
	case stageexecution.FieldStageIndex:
		return m.StageIndex()
	case stageexecution.FieldStageID:
		return m.StageID()
	case stageexecution.FieldStageName:
		return m.StageName()
	case stageexecution.FieldAgent:
		return m.Agent()
	case stageexecution.FieldStatus:
		return m.Status()
	case stageexecution.FieldStartedAtUs:
		return m.StartedAtUs()
	case stageexecution.FieldCompletedAtUs:
		return m.CompletedAtUs()
	case stageexecution.FieldDurationMs:
		return m.DurationMs()
	case stageexecution.FieldCurrentIteration:
		return m.CurrentIteration()
	case stageexecution.FieldStageOutput:
		return m.StageOutput()
	case stageexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stageexecution.FieldParentStageExecutionID:
		return m.ParentStageExecutionID()
	case stageexecution.FieldParallelIndex:
		return m.ParallelIndex()
	case stageexecution.FieldParallelType:
		return m.ParallelType()
	case stageexecution.FieldExpectedParallelCount:
		return m.ExpectedParallelCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageexecution.FieldSessionID:
		return m.OldSessionID(ctx)
	case stageexecution.FieldStageIndex:
		return m.OldStageIndex(ctx)
	case stageexecution.FieldStageID:
		return m.OldStageID(ctx)
	case stageexecution.FieldStageName:
		return m.OldStageName(ctx)
	case stageexecution.FieldAgent:
		return m.OldAgent(ctx)
	case stageexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stageexecution.FieldStartedAtUs:
		return m.OldStartedAtUs(ctx)
	case stageexecution.FieldCompletedAtUs:
		return m.OldCompletedAtUs(ctx)
	case stageexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageexecution.FieldCurrentIteration:
		return m.OldCurrentIteration(ctx)
	case stageexecution.FieldStageOutput:
		return m.OldStageOutput(ctx)
	case stageexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stageexecution.FieldParentStageExecutionID:
		return m.OldParentStageExecutionID(ctx)
	case stageexecution.FieldParallelIndex:
		return m.OldParallelIndex(ctx)
	case stageexecution.FieldParallelType:
		return m.OldParallelType(ctx)
	case stageexecution.FieldExpectedParallelCount:
		return m.OldExpectedParallelCount(ctx)
	}
	return nil, fmt.Errorf("unknown StageExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageIndex(v)
		return nil
	case stageexecution.FieldStageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageID(v)
		return nil
	case stageexecution.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stageexecution.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case stageexecution.FieldStatus:
		v, ok := value.(stageexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stageexecution.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAtUs(v)
		return nil
	case stageexecution.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAtUs(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageexecution.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIteration(v)
		return nil
	case stageexecution.FieldStageOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageOutput(v)
		return nil
	case stageexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stageexecution.FieldParentStageExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentStageExecutionID(v)
		return nil
	case stageexecution.FieldParallelIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParallelIndex(v)
		return nil
	case stageexecution.FieldParallelType:
		v, ok := value.(stageexecution.ParallelType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParallelType(v)
		return nil
	case stageexecution.FieldExpectedParallelCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedParallelCount(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstage_index != nil {
		fields = append(fields, stageexecution.FieldStageIndex)
	}
	if m.addstarted_at_us != nil {
		fields = append(fields, stageexecution.FieldStartedAtUs)
	}
	if m.addcompleted_at_us != nil {
		fields = append(fields, stageexecution.FieldCompletedAtUs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.addcurrent_iteration != nil {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	if m.addparallel_index != nil {
		fields = append(fields, stageexecution.FieldParallelIndex)
	}
	if m.addexpected_parallel_count != nil {
		fields = append(fields, stageexecution.FieldExpectedParallelCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageexecution.FieldStageIndex:
		return m.AddedStageIndex()
	case stageexecution.FieldStartedAtUs:
		return m.AddedStartedAtUs()
	case stageexecution.FieldCompletedAtUs:
		return m.AddedCompletedAtUs()
	case stageexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case stageexecution.FieldCurrentIteration:
		return m.AddedCurrentIteration()
	case stageexecution.FieldParallelIndex:
		return m.AddedParallelIndex()
	case stageexecution.FieldExpectedParallelCount:
		return m.AddedExpectedParallelCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageexecution.FieldStageIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageIndex(v)
		return nil
	case stageexecution.FieldStartedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAtUs(v)
		return nil
	case stageexecution.FieldCompletedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAtUs(v)
		return nil
	case stageexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case stageexecution.FieldCurrentIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIteration(v)
		return nil
	case stageexecution.FieldParallelIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParallelIndex(v)
		return nil
	case stageexecution.FieldExpectedParallelCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedParallelCount(v)
		return nil
	}
	return fmt.Errorf("unknown StageExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageexecution.FieldStartedAtUs) {
		fields = append(fields, stageexecution.FieldStartedAtUs)
	}
	if m.FieldCleared(stageexecution.FieldCompletedAtUs) {
		fields = append(fields, stageexecution.FieldCompletedAtUs)
	}
	if m.FieldCleared(stageexecution.FieldDurationMs) {
		fields = append(fields, stageexecution.FieldDurationMs)
	}
	if m.FieldCleared(stageexecution.FieldCurrentIteration) {
		fields = append(fields, stageexecution.FieldCurrentIteration)
	}
	if m.FieldCleared(stageexecution.FieldStageOutput) {
		fields = append(fields, stageexecution.FieldStageOutput)
	}
	if m.FieldCleared(stageexecution.FieldErrorMessage) {
		fields = append(fields, stageexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stageexecution.FieldParentStageExecutionID) {
		fields = append(fields, stageexecution.FieldParentStageExecutionID)
	}
	if m.FieldCleared(stageexecution.FieldExpectedParallelCount) {
		fields = append(fields, stageexecution.FieldExpectedParallelCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageExecutionMutation) ClearField(name string) error {
	switch name {
	case stageexecution.FieldStartedAtUs:
		m.ClearStartedAtUs()
		return nil
	case stageexecution.FieldCompletedAtUs:
		m.ClearCompletedAtUs()
		return nil
	case stageexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case stageexecution.FieldCurrentIteration:
		m.ClearCurrentIteration()
		return nil
	case stageexecution.FieldStageOutput:
		m.ClearStageOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stageexecution.FieldParentStageExecutionID:
		m.ClearParentStageExecutionID()
		return nil
	case stageexecution.FieldExpectedParallelCount:
		m.ClearExpectedParallelCount()
		return nil
	}
	return fmt.Errorf("unknown StageExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageExecutionMutation) ResetField(name string) error {
	switch name {
	case stageexecution.FieldSessionID:
		m.ResetSessionID()
		return nil
	case stageexecution.FieldStageIndex:
		m.ResetStageIndex()
		return nil
	case stageexecution.FieldStageID:
		m.ResetStageID()
		return nil
	case stageexecution.FieldStageName:
		m.ResetStageName()
		return nil
	case stageexecution.FieldAgent:
		m.ResetAgent()
		return nil
	case stageexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stageexecution.FieldStartedAtUs:
		m.ResetStartedAtUs()
		return nil
	case stageexecution.FieldCompletedAtUs:
		m.ResetCompletedAtUs()
		return nil
	case stageexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageexecution.FieldCurrentIteration:
		m.ResetCurrentIteration()
		return nil
	case stageexecution.FieldStageOutput:
		m.ResetStageOutput()
		return nil
	case stageexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stageexecution.FieldParentStageExecutionID:
		m.ResetParentStageExecutionID()
		return nil
	case stageexecution.FieldParallelIndex:
		m.ResetParallelIndex()
		return nil
	case stageexecution.FieldParallelType:
		m.ResetParallelType()
		return nil
	case stageexecution.FieldExpectedParallelCount:
		m.ResetExpectedParallelCount()
		return nil
	}
	return fmt.Errorf("unknown StageExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.session != nil {
		edges = append(edges, stageexecution.EdgeSession)
	}
	if m.llm_interactions != nil {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.mcp_interactions != nil {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case stageexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.mcp_interactions))
		for id := range m.mcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedllm_interactions != nil {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.removedmcp_interactions != nil {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stageexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case stageexecution.EdgeMcpInteractions:
		ids := make([]ent.Value, 0, len(m.removedmcp_interactions))
		for id := range m.removedmcp_interactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsession {
		edges = append(edges, stageexecution.EdgeSession)
	}
	if m.clearedllm_interactions {
		edges = append(edges, stageexecution.EdgeLlmInteractions)
	}
	if m.clearedmcp_interactions {
		edges = append(edges, stageexecution.EdgeMcpInteractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stageexecution.EdgeSession:
		return m.clearedsession
	case stageexecution.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case stageexecution.EdgeMcpInteractions:
		return m.clearedmcp_interactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown StageExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stageexecution.EdgeSession:
		m.ResetSession()
		return nil
	case stageexecution.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case stageexecution.EdgeMcpInteractions:
		m.ResetMcpInteractions()
		return nil
	}
	return fmt.Errorf("unknown StageExecution edge %s", name)
}

// WarningMutation represents an operation that mutates the Warning nodes in the graph.
type WarningMutation struct {
	config
	op               Op
	typ              string
	id               *string
	category         *string
	server_id        *string
	message          *string
	details          *string
	created_at_us    *int64
	addcreated_at_us *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Warning, error)
	predicates       []predicate.Warning
}

var _ ent.Mutation = (*WarningMutation)(nil)

// warningOption allows management of the mutation configuration using functional options.
type warningOption func(*WarningMutation)

// newWarningMutation creates new mutation for the Warning entity.
func newWarningMutation(c config, op Op, opts ...warningOption) *WarningMutation {
	m := &WarningMutation{
		config:        c,
		op:            op,
		typ:           TypeWarning,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWarningID sets the ID field of the mutation.
func withWarningID(id string) warningOption {
	return func(m *WarningMutation) {
		var (
			err   error
			once  sync.Once
			value *Warning
		)
		m.oldValue = func(ctx context.Context) (*Warning, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Warning.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWarning sets the old Warning of the mutation.
func withWarning(node *Warning) warningOption {
	return func(m *WarningMutation) {
		m.oldValue = func(context.Context) (*Warning, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WarningMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WarningMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Warning entities.
func (m *WarningMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WarningMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WarningMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Warning.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *WarningMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *WarningMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Warning entity.
// If the Warning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *WarningMutation) ResetCategory() {
	m.category = nil
}

// SetServerID sets the "server_id" field.
func (m *WarningMutation) SetServerID(s string) {
	m.server_id = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *WarningMutation) ServerID() (r string, exists bool) {
	v := m.server_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the Warning entity.
// If the Warning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ClearServerID clears the value of the "server_id" field.
func (m *WarningMutation) ClearServerID() {
	m.server_id = nil
	m.clearedFields[warning.FieldServerID] = struct{}{}
}

// ServerIDCleared returns if the "server_id" field was cleared in this mutation.
func (m *WarningMutation) ServerIDCleared() bool {
	_, ok := m.clearedFields[warning.FieldServerID]
	return ok
}

// ResetServerID resets all changes to the "server_id" field.
func (m *WarningMutation) ResetServerID() {
	m.server_id = nil
	delete(m.clearedFields, warning.FieldServerID)
}

// SetMessage sets the "message" field.
func (m *WarningMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *WarningMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Warning entity.
// If the Warning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *WarningMutation) ResetMessage() {
	m.message = nil
}

// SetDetails sets the "details" field.
func (m *WarningMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *WarningMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Warning entity.
// If the Warning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *WarningMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[warning.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *WarningMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[warning.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *WarningMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, warning.FieldDetails)
}

// SetCreatedAtUs sets the "created_at_us" field.
func (m *WarningMutation) SetCreatedAtUs(i int64) {
	m.created_at_us = &i
	m.addcreated_at_us = nil
}

// CreatedAtUs returns the value of the "created_at_us" field in the mutation.
func (m *WarningMutation) CreatedAtUs() (r int64, exists bool) {
	v := m.created_at_us
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAtUs returns the old "created_at_us" field's value of the Warning entity.
// If the Warning object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WarningMutation) OldCreatedAtUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAtUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAtUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAtUs: %w", err)
	}
	return oldValue.CreatedAtUs, nil
}

// AddCreatedAtUs adds i to the "created_at_us" field.
func (m *WarningMutation) AddCreatedAtUs(i int64) {
	if m.addcreated_at_us != nil {
		*m.addcreated_at_us += i
	} else {
		m.addcreated_at_us = &i
	}
}

// AddedCreatedAtUs returns the value that was added to the "created_at_us" field in this mutation.
func (m *WarningMutation) AddedCreatedAtUs() (r int64, exists bool) {
	v := m.addcreated_at_us
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAtUs resets all changes to the "created_at_us" field.
func (m *WarningMutation) ResetCreatedAtUs() {
	m.created_at_us = nil
	m.addcreated_at_us = nil
}

// Where appends a list predicates to the WarningMutation builder.
func (m *WarningMutation) Where(ps ...predicate.Warning) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WarningMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WarningMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Warning, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WarningMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WarningMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Warning).
func (m *WarningMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WarningMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.category != nil {
		fields = append(fields, warning.FieldCategory)
	}
	if m.server_id != nil {
		fields = append(fields, warning.FieldServerID)
	}
	if m.message != nil {
		fields = append(fields, warning.FieldMessage)
	}
	if m.details != nil {
		fields = append(fields, warning.FieldDetails)
	}
	if m.created_at_us != nil {
		fields = append(fields, warning.FieldCreatedAtUs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WarningMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case warning.FieldCategory:
		return m.Category()
	case warning.FieldServerID:
		return m.ServerID()
	case warning.FieldMessage:
		return m.Message()
	case warning.FieldDetails:
		return m.Details()
	case warning.FieldCreatedAtUs:
		return m.CreatedAtUs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WarningMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case warning.FieldCategory:
		return m.OldCategory(ctx)
	case warning.FieldServerID:
		return m.OldServerID(ctx)
	case warning.FieldMessage:
		return m.OldMessage(ctx)
	case warning.FieldDetails:
		return m.OldDetails(ctx)
	case warning.FieldCreatedAtUs:
		return m.OldCreatedAtUs(ctx)
	}
	return nil, fmt.Errorf("unknown Warning field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarningMutation) SetField(name string, value ent.Value) error {
	switch name {
	case warning.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case warning.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case warning.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case warning.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case warning.FieldCreatedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAtUs(v)
		return nil
	}
	return fmt.Errorf("unknown Warning field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WarningMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at_us != nil {
		fields = append(fields, warning.FieldCreatedAtUs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WarningMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case warning.FieldCreatedAtUs:
		return m.AddedCreatedAtUs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WarningMutation) AddField(name string, value ent.Value) error {
	switch name {
	case warning.FieldCreatedAtUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAtUs(v)
		return nil
	}
	return fmt.Errorf("unknown Warning numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WarningMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(warning.FieldServerID) {
		fields = append(fields, warning.FieldServerID)
	}
	if m.FieldCleared(warning.FieldDetails) {
		fields = append(fields, warning.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WarningMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WarningMutation) ClearField(name string) error {
	switch name {
	case warning.FieldServerID:
		m.ClearServerID()
		return nil
	case warning.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown Warning nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WarningMutation) ResetField(name string) error {
	switch name {
	case warning.FieldCategory:
		m.ResetCategory()
		return nil
	case warning.FieldServerID:
		m.ResetServerID()
		return nil
	case warning.FieldMessage:
		m.ResetMessage()
		return nil
	case warning.FieldDetails:
		m.ResetDetails()
		return nil
	case warning.FieldCreatedAtUs:
		m.ResetCreatedAtUs()
		return nil
	}
	return fmt.Errorf("unknown Warning field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WarningMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WarningMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WarningMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WarningMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WarningMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WarningMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WarningMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Warning unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WarningMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Warning edge %s", name)
}
