package main

// _version is the version of docu.
// Releases overwrite it at build time with ldflags.
var _version = "dev"
