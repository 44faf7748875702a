package model

// Version is the specdoc tool version.
const Version = "0.1.0"
