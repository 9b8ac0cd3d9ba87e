// Package auth signs in through the StudyCast web application in a real browser
// and reads the hosted auth session (access token and user id) it stores.
package auth
