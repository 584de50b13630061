package entities

import (
	"context"
	"errors"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"
)

type DialogState string

const (
	DialogStateClosed     DialogState = "closed"
	DialogStateOpen       DialogState = "open"
	DialogStateSubmitting DialogState = "submitting"
)

type DialogMode string

const (
	DialogModeCreate DialogMode = "create"
	DialogModeEdit   DialogMode = "edit"
)

var ErrDialogNotOpen = errors.New("dialog is not open")

// Dialog is the create/edit form of one entity:
//
//	Closed -> Open(create) | Open(edit, prefilled)
//	Open -> Submitting -> Closed on success, Open with errors on failure
//	Open -> Closed on cancel, without touching the backend
type Dialog[T any] struct {
	usecase      contracts.EntityUsecase[T]
	state        DialogState
	mode         DialogMode
	recordID     *int64
	values       map[string]interface{}
	fieldErrors  map[string]string
	notification *responses.Notification
}

func NewDialog[T any](usecase contracts.EntityUsecase[T]) *Dialog[T] {
	return &Dialog[T]{
		usecase: usecase,
		state:   DialogStateClosed,
		mode:    DialogModeCreate,
	}
}

func (d *Dialog[T]) State() DialogState {
	return d.state
}

func (d *Dialog[T]) Mode() DialogMode {
	return d.mode
}

func (d *Dialog[T]) OpenCreate() {
	d.reset()
	d.state = DialogStateOpen
	d.mode = DialogModeCreate
	d.values = make(map[string]interface{}, len(d.usecase.Definition().Fields))
	for _, field := range d.usecase.Definition().Fields {
		d.values[field.Column] = nil
	}
}

// OpenEdit prefills the form with the stored record.
func (d *Dialog[T]) OpenEdit(id int64, record *T) error {
	values, err := FormValues(d.usecase.Definition(), record)
	if err != nil {
		return err
	}
	d.reset()
	d.state = DialogStateOpen
	d.mode = DialogModeEdit
	d.recordID = &id
	d.values = values
	return nil
}

func (d *Dialog[T]) Cancel() {
	d.reset()
}

// Submit sends the form through the usecase. On failure the dialog stays
// open with the submitted values, any field errors and the error notification.
func (d *Dialog[T]) Submit(ctx context.Context, form requests.EntityForm) error {
	if d.state != DialogStateOpen {
		return ErrDialogNotOpen
	}
	d.state = DialogStateSubmitting
	d.fieldErrors = nil
	d.notification = nil

	var err error
	switch d.mode {
	case DialogModeEdit:
		mutation, updateErr := d.usecase.Update(ctx, *d.recordID, form)
		d.apply(mutation)
		err = updateErr
	default:
		mutation, createErr := d.usecase.Create(ctx, form)
		d.apply(mutation)
		if createErr == nil {
			d.recordID = &mutation.ID
		}
		err = createErr
	}

	if err != nil {
		d.state = DialogStateOpen
		d.fieldErrors = exceptions.AsCustomError(err).FieldErrors
		return err
	}

	d.state = DialogStateClosed
	return nil
}

func (d *Dialog[T]) View() *responses.FormDialog {
	return &responses.FormDialog{
		Resource:     d.usecase.Definition().Resource,
		State:        string(d.state),
		Mode:         string(d.mode),
		RecordID:     d.recordID,
		Values:       d.values,
		FieldErrors:  d.fieldErrors,
		Notification: d.notification,
	}
}

func (d *Dialog[T]) apply(mutation *models.Mutation) {
	if mutation == nil {
		return
	}
	if mutation.Values != nil {
		d.values = mutation.Values
	}
	d.notification = mutation.Notification
}

func (d *Dialog[T]) reset() {
	d.state = DialogStateClosed
	d.mode = DialogModeCreate
	d.recordID = nil
	d.values = nil
	d.fieldErrors = nil
	d.notification = nil
}
