// Package account holds the user registration and bank account samples
// shown by the guardian-demo command.
package account
