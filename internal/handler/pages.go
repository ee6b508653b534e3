package handler

import (
	"sampleapp/internal/model"
	"sampleapp/internal/service"
	"sampleapp/internal/view"
)

type accountForm struct {
	Name  string
	Email string
}

type signupPage struct {
	view.Page
	Form accountForm
}

type editPage struct {
	view.Page
	User *model.Account
	Form accountForm
}

type userRow struct {
	Account   *model.Account
	CanDelete bool
}

type indexPage struct {
	view.Page
	Users      []userRow
	Pagination view.Pagination
}

type postRow struct {
	Post       model.Post
	ShowAuthor bool
	CanDelete  bool
}

type profilePage struct {
	view.Page
	User           *model.Account
	Stats          service.FollowStats
	Relationship   *model.Relationship
	ShowFollowForm bool
	Posts          []postRow
	PostCount      int64
	Pagination     view.Pagination
}

type followPage struct {
	view.Page
	User       *model.Account
	Stats      service.FollowStats
	Users      []model.Account
	Pagination view.Pagination
}

type signinPage struct {
	view.Page
	Email string
}

type homePage struct {
	view.Page
	User       *model.Account
	Stats      service.FollowStats
	Content    string
	Feed       []postRow
	Pagination view.Pagination
}

type aboutPage struct {
	view.Page
}

type errorPage struct {
	view.Page
	Status  int
	Message string
}
