package carousel

// Controller owns the navigation state of a carousel: the working image
// order and the index of the image on display.
//
// Exactly one indicator is active at any time and it always names the
// current image. Every change notifies listeners, whether it came from a
// gesture, a dot tap, or application code.
//
// Controller is NOT thread-safe. It must only be used from the UI thread.
// To drive it from a background goroutine, use drift.Dispatch.
//
// Example:
//
//	ctrl, err := carousel.NewController(urls, carousel.WithShuffle(true))
//	if err != nil {
//	    return err
//	}
//	ctrl.Advance(carousel.Forward)
//	fmt.Println(ctrl.Current())
type Controller struct {
	images    []string
	positions map[string]int
	index     int

	listeners      map[int]func()
	nextListenerID int
	disposed       bool
}

// NewController creates a controller over images. The slice is copied.
// It fails with [ErrNoImages] for an empty list and [ErrDuplicateImage]
// when an identifier repeats.
func NewController(images []string, opts ...Option) (*Controller, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	var options Options
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	working := make([]string, len(images))
	copy(working, images)
	if options.Shuffle {
		options.shuffle(working)
	}

	positions := make(map[string]int, len(working))
	for i, img := range working {
		if _, dup := positions[img]; dup {
			return nil, &duplicateError{image: img}
		}
		positions[img] = i
	}

	return &Controller{
		images:    working,
		positions: positions,
	}, nil
}

// Len returns the number of images.
func (c *Controller) Len() int {
	return len(c.images)
}

// Index returns the position of the current image in the working order.
func (c *Controller) Index() int {
	return c.index
}

// Current returns the identifier of the image on display.
func (c *Controller) Current() string {
	return c.images[c.index]
}

// Images returns a copy of the working order.
func (c *Controller) Images() []string {
	out := make([]string, len(c.images))
	copy(out, c.images)
	return out
}

// IsActive reports whether image is the one on display.
func (c *Controller) IsActive(image string) bool {
	return c.images[c.index] == image
}

// Indicators returns one indicator per image, in display order.
func (c *Controller) Indicators() []Indicator {
	out := make([]Indicator, len(c.images))
	for i, img := range c.images {
		out[i] = Indicator{Image: img, Index: i, Active: i == c.index}
	}
	return out
}

// Advance moves one image in dir, wrapping around at both ends.
func (c *Controller) Advance(dir Direction) {
	n := len(c.images)
	switch dir {
	case Backward:
		c.setIndex((c.index - 1 + n) % n)
	default:
		c.setIndex((c.index + 1) % n)
	}
}

// Next is shorthand for Advance(Forward).
func (c *Controller) Next() { c.Advance(Forward) }

// Previous is shorthand for Advance(Backward).
func (c *Controller) Previous() { c.Advance(Backward) }

// Select displays image. It fails with an error matching
// [ErrInvalidReference] if image is not in the carousel, leaving the
// state unchanged.
func (c *Controller) Select(image string) error {
	i, ok := c.positions[image]
	if !ok {
		return &InvalidReferenceError{Image: image, ByImage: true, Len: len(c.images)}
	}
	c.setIndex(i)
	return nil
}

// SelectIndex displays the image at position i of the working order.
func (c *Controller) SelectIndex(i int) error {
	if i < 0 || i >= len(c.images) {
		return &InvalidReferenceError{Index: i, Len: len(c.images)}
	}
	c.setIndex(i)
	return nil
}

// HandleSwipe navigates in response to the end of a horizontal drag.
// It reports whether the velocity caused navigation; zero does not.
func (c *Controller) HandleSwipe(velocity float64) bool {
	dir, ok := DirectionForVelocity(velocity)
	if !ok {
		return false
	}
	c.Advance(dir)
	return true
}

// AddListener registers a callback for index changes.
// It returns a function that removes the listener.
func (c *Controller) AddListener(listener func()) func() {
	if listener == nil || c.disposed {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose drops all listeners. The controller keeps answering queries and
// navigating, but no longer notifies.
func (c *Controller) Dispose() {
	c.disposed = true
	c.listeners = nil
}

func (c *Controller) setIndex(i int) {
	if i == c.index {
		return
	}
	c.index = i
	c.notifyListeners()
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Indicator describes one dot of the indicator row.
type Indicator struct {
	// Image is the identifier of the image the dot represents.
	Image string
	// Index is the position of Image in the working order.
	Index int
	// Active is true for the dot of the image on display.
	Active bool
}
