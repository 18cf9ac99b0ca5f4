package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

const apiPrefix = "/api/v1"

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.authenticate)
	adminAuthMiddleware := authMiddleware.Append(app.requireAdmin)

	collectionMiddleware := standardMiddleware.Append(exactPath)
	collectionAuthMiddleware := collectionMiddleware.Append(app.authenticate)
	collectionAdminMiddleware := collectionAuthMiddleware.Append(app.requireAdmin)

	mux := pat.New()

	mux.Get("/healthz", standardMiddleware.ThenFunc(app.healthz))

	// Auth
	mux.Post(apiPrefix+"/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))
	mux.Post(apiPrefix+"/auth/refresh", standardMiddleware.ThenFunc(app.authHandler.Refresh))
	mux.Post(apiPrefix+"/auth/logout", authMiddleware.ThenFunc(app.authHandler.Logout))
	mux.Get(apiPrefix+"/auth/me", authMiddleware.ThenFunc(app.authHandler.Me))

	// Users. Item routes go first: a pattern ending in "/" matches by prefix,
	// so collection routes use the exactPath chains.
	mux.Get(apiPrefix+"/users/:id/places", standardMiddleware.ThenFunc(app.placeHandler.GetPlacesByOwner))
	mux.Get(apiPrefix+"/users/:id", standardMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put(apiPrefix+"/users/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del(apiPrefix+"/users/:id", adminAuthMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post(apiPrefix+"/users/", collectionAdminMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get(apiPrefix+"/users/", collectionAdminMiddleware.ThenFunc(app.userHandler.GetAllUsers))

	// Places
	mux.Get(apiPrefix+"/places/:id/reviews", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewsByPlaceID))
	mux.Get(apiPrefix+"/places/:id", standardMiddleware.ThenFunc(app.placeHandler.GetPlaceByID))
	mux.Put(apiPrefix+"/places/:id", authMiddleware.ThenFunc(app.placeHandler.UpdatePlace))
	mux.Del(apiPrefix+"/places/:id", authMiddleware.ThenFunc(app.placeHandler.DeletePlace))
	mux.Post(apiPrefix+"/places/", collectionAuthMiddleware.ThenFunc(app.placeHandler.CreatePlace))
	mux.Get(apiPrefix+"/places/", collectionMiddleware.ThenFunc(app.placeHandler.GetAllPlaces))

	// Reviews
	mux.Get(apiPrefix+"/reviews/:id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewByID))
	mux.Put(apiPrefix+"/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del(apiPrefix+"/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))
	mux.Post(apiPrefix+"/reviews/", collectionAuthMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get(apiPrefix+"/reviews/", collectionMiddleware.ThenFunc(app.reviewHandler.GetReviews))

	// Amenities
	mux.Get(apiPrefix+"/amenities/:id", standardMiddleware.ThenFunc(app.amenityHandler.GetAmenityByID))
	mux.Put(apiPrefix+"/amenities/:id", adminAuthMiddleware.ThenFunc(app.amenityHandler.UpdateAmenity))
	mux.Del(apiPrefix+"/amenities/:id", adminAuthMiddleware.ThenFunc(app.amenityHandler.DeleteAmenity))
	mux.Post(apiPrefix+"/amenities/", collectionAdminMiddleware.ThenFunc(app.amenityHandler.CreateAmenity))
	mux.Get(apiPrefix+"/amenities/", collectionMiddleware.ThenFunc(app.amenityHandler.GetAllAmenities))

	return mux
}
