package form

import (
	"context"
	"errors"
	"sync"

	"foodtracker/domain"
	"foodtracker/entities"
	"foodtracker/internal/utils"
	"foodtracker/pkg/attachment"
)

const (
	StateFresh      = "fresh"
	StateLoaded     = "loaded"
	StateEditing    = "editing"
	StateSubmitting = "submitting"
)

type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldEmail  FieldKind = "email"
	FieldDate   FieldKind = "date"
	FieldSelect FieldKind = "select"
)

type (
	Field struct {
		Name     string
		Label    string
		Kind     FieldKind
		Required bool
		Options  []string // select fields only
	}

	Values map[string]string

	// Sink receives the assembled draft exactly once per successful submit.
	Sink func(ctx context.Context, values Values, image *entities.Image) error

	// Loader fetches the record an edit form starts from.
	Loader func(ctx context.Context, id string) (Values, *entities.Image, error)

	// Controller manages one editable record through initialize, edit and
	// submit. It is generic over the record shape: the schema names the
	// fields, the sink and loader bind it to a concrete gateway operation.
	Controller struct {
		mu     sync.Mutex
		schema []Field
		byName map[string]Field
		values Values
		state  string

		picker *attachment.Picker
		loader Loader
		sink   Sink
		nav    domain.Navigator
	}

	ValidationError struct {
		Field   string
		Message string
	}
)

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var errNoLoader = errors.New("form has no loader")

func NewController(schema []Field, picker *attachment.Picker, loader Loader, sink Sink, nav domain.Navigator) *Controller {
	byName := make(map[string]Field, len(schema))
	values := make(Values, len(schema))
	for _, f := range schema {
		byName[f.Name] = f
		values[f.Name] = ""
	}
	return &Controller{
		schema: schema,
		byName: byName,
		values: values,
		state:  StateFresh,
		picker: picker,
		loader: loader,
		sink:   sink,
		nav:    nav,
	}
}

func (c *Controller) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Value(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[name]
}

func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	values := make(Values, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	return values
}

func (c *Controller) Picker() *attachment.Picker {
	return c.picker
}

// ChangeField updates exactly the named field. Unknown names are a no-op,
// and nothing else is touched.
func (c *Controller) ChangeField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byName[name]; !ok {
		return
	}
	if c.state == StateSubmitting {
		return
	}
	c.values[name] = value
	if c.state == StateFresh || c.state == StateLoaded {
		c.state = StateEditing
	}
}

// LoadForEdit populates the form from the record with the given id. When the
// record cannot be found, no field is mutated and the user is sent back to
// the listing.
func (c *Controller) LoadForEdit(ctx context.Context, id string) error {
	if c.loader == nil {
		return errNoLoader
	}

	values, image, err := c.loader(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) || errors.Is(err, domain.ErrProfileNotFound) {
			c.nav.NavigateTo(domain.RouteDashboard)
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for name := range c.byName {
		c.values[name] = values[name]
	}
	c.state = StateLoaded
	c.picker.SetImage(image)
	return nil
}

// Submit validates the current values, hands the draft to the sink exactly
// once, and navigates to the listing on success. A submit while another is
// in flight is rejected; a sink failure returns the form to the editing
// state with every value intact.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	if err := c.validate(); err != nil {
		c.mu.Unlock()
		return err
	}
	values := make(Values, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	image, _ := c.picker.Image()

	if err := c.sink(ctx, values, image); err != nil {
		c.mu.Lock()
		c.state = StateEditing
		c.mu.Unlock()
		return err
	}

	c.nav.NavigateTo(domain.RouteDashboard)
	return nil
}

// validate is called with c.mu held.
func (c *Controller) validate() error {
	for _, f := range c.schema {
		value := c.values[f.Name]
		if f.Required && value == "" {
			return &ValidationError{Field: f.Name, Message: "required"}
		}
		if value == "" {
			continue
		}
		switch f.Kind {
		case FieldEmail:
			if err := utils.Validate.Var(value, "required,email"); err != nil {
				return &ValidationError{Field: f.Name, Message: "must be a valid email address"}
			}
		case FieldSelect:
			if !contains(f.Options, value) {
				return &ValidationError{Field: f.Name, Message: "not one of the allowed options"}
			}
		}
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
