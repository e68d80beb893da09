// Package carousel provides an image carousel widget for Drift.
//
// A carousel shows one image at a time from an ordered set and a row of
// indicator dots, one per image. Users move between images by swiping
// horizontally or by tapping a dot. Navigation wraps around at both ends.
//
// # Controller
//
// [Controller] holds all navigation state: the working image order (fixed
// at construction, optionally shuffled) and the index of the image on
// display. The widget renders purely from controller state and rebuilds
// whenever the controller notifies its listeners:
//
//	ctrl, err := carousel.NewController(images, carousel.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	ctrl.Advance(carousel.Forward)  // next, wrapping to the first image
//	ctrl.Advance(carousel.Backward) // previous, wrapping to the last image
//	err = ctrl.Select("b.png")      // jump to an image
//
// # Widget
//
// [Carousel] wires a controller to a GestureDetector (swipe) and a row of
// tappable [Dot] widgets:
//
//	carousel.Carousel{
//	    Images:      images,
//	    Provider:    carousel.NewCachedProvider(loader),
//	    ActiveColor: carousel.MustParseColor("coral"),
//	}
//
// # Errors
//
// Constructing a controller without images fails with [ErrNoImages].
// Selecting an identifier that is not in the carousel fails with an error
// matching [ErrInvalidReference].
package carousel
