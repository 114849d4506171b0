// Package repo locates the project root and derives the project identity
// from repository metadata.
//
// A directory is inside a project when a .git directory exists at or above
// it. The identity is the final path segment of the origin remote URL, with
// any .git suffix stripped; SSH and HTTPS remote forms parse identically:
//
//	git@github.com:TestOwner/TestRepo.git   -> TestRepo
//	https://github.com/TestOwner/TestRepo   -> TestRepo
//
// The package reads metadata from the filesystem directly and never invokes
// the git binary.
package repo
