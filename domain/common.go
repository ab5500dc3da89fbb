package domain

import (
	"errors"
)

// Routes mirror the pages of the tracker UI.
const (
	RouteDashboard  = "/dashboard"
	RouteAddFood    = "/addfood"
	RouteUpdateFood = "/updatefood"
	RouteProfile    = "/profile"
	RouteLogin      = "/login"
	RouteRegister   = "/register"
)

var (
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrSubmitInFlight = errors.New("a submit is already in progress")
)

// Navigator is the navigation half of the gateway boundary. The surrounding
// application decides what "going to a route" means.
type Navigator interface {
	NavigateTo(route string)
}

func EditFoodRoute(id string) string {
	return RouteUpdateFood + "/" + id
}
