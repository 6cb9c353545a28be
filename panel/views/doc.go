// Package views renders the panel pages as templ components.
//
// Components are written against templ.ComponentFunc directly. Every dynamic
// value passes through templ.EscapeString.
//
// Element ids the handlers and htmx attributes depend on:
//
//	#alerts       flash and error banners
//	#bot-form     the chatbot form, swapped whole on validation errors
//	#slug-field   slug input, user_edited flag and check result
//	#user_edited  hidden manual-override flag
//	#slug-check   slug uniqueness result line
//	#access-form  the user access form
package views
