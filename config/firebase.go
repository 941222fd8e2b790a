package config

import "os"

// FirebaseServiceAccountKeyPath points at the service account JSON used for
// ID token verification and FCM. Overridable for deployments that mount the
// key elsewhere.
var FirebaseServiceAccountKeyPath = firebaseKeyPath()

func firebaseKeyPath() string {
	if p := os.Getenv("FIREBASE_CREDENTIALS_FILE"); p != "" {
		return p
	}
	return "serviceAccountKey.json"
}
