package attachment

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"foodtracker/domain"
	"foodtracker/entities"
	"foodtracker/internal/utils"
)

var allowedImageMIME = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// File is a user-selected local file, as handed over by a file picker.
type File struct {
	Name string
	Data []byte
}

type (
	// Picker turns a selected file into a previewable, submission-ready
	// image. Each form owns exactly one Picker; it is never shared.
	//
	// Decoding runs in the background. The generation counter guarantees
	// that a decode finishing late can never publish over a newer
	// selection: the latest selection always wins.
	Picker struct {
		mu        sync.Mutex
		gen       uint64
		raw       *File
		image     *entities.Image
		decodeErr error
		pending   sync.WaitGroup

		decode func(file *File) (*entities.Image, error)
	}
)

func NewPicker() *Picker {
	return &Picker{decode: decodeFile}
}

// Select stores the file and starts decoding its preview. Passing nil clears
// the current selection. Any previous preview or pending decode result is
// discarded immediately.
func (p *Picker) Select(file *File) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.raw = file
	p.image = nil
	p.decodeErr = nil
	p.mu.Unlock()

	if file == nil {
		return
	}

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()

		image, err := p.decode(file)

		p.mu.Lock()
		defer p.mu.Unlock()
		if gen != p.gen {
			return // superseded by a newer selection
		}
		if err != nil {
			p.decodeErr = err
			return
		}
		p.image = image
	}()
}

func (p *Picker) Clear() {
	p.Select(nil)
}

// SetImage primes the picker with an already stored image, used when a form
// loads an existing record for editing.
func (p *Picker) SetImage(image *entities.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.raw = nil
	p.image = image
	p.decodeErr = nil
}

func (p *Picker) RawFile() *File {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.raw
}

// Image returns the decoded preview. The second value is false while no
// selection has settled; callers show a placeholder in that case.
func (p *Picker) Image() (*entities.Image, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.image, p.image != nil
}

func (p *Picker) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.decodeErr
}

// Settle blocks until all in-flight decodes have finished.
func (p *Picker) Settle() {
	p.pending.Wait()
}

func decodeFile(file *File) (*entities.Image, error) {
	if len(file.Data) == 0 {
		return nil, domain.ErrEmptyImage
	}
	if int64(len(file.Data)) > utils.MaxImageBytes() {
		return nil, domain.ErrImageTooLarge
	}

	mime := mimetype.Detect(file.Data)
	allowed := false
	for _, m := range allowedImageMIME {
		if mime.Is(m) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, domain.ErrInvalidImageFormat
	}

	return &entities.Image{
		Data:    file.Data,
		MIME:    mime.String(),
		DataURI: fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(file.Data)),
	}, nil
}
