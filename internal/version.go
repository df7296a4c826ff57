package internal

// Version is the current pptranslator release version
const Version = "1.0.0"
