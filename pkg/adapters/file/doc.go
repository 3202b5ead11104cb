/*
Package file loads schema declarations from YAML or JSON files.

Each entry maps an identifier to form text, or to a definition carrying an
explicit parent:

	schemas:
	  age: integer
	  user/id: uuid
	  user/age: and(nat-int, adult)
	  user/tags: "[keyword]"
	  app/owner:
	    form: "@user/id"
	    parent: user/id
*/
package file
