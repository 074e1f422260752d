/*
Package manifest loads declarative plugins from YAML, JSON or TOML files.

A manifest declares behaviors (whose reactions re-raise a trigger or write state),
templates (tags, behaviors and a static view tree) and commands (open a template in a
tab, raise a trigger on a template's singleton, or invoke another command):

	name: hello
	behaviors:
	  - id: user.on-close-destroy
	    triggers: [close]
	    raise: destroy
	templates:
	  - id: user.hello
	    tags: [user.hello]
	    behaviors: [user.on-close-destroy]
	    view:
	      tag: h1
	      text: Hello World!
	commands:
	  - id: user.say-hello
	    desc: "User: Say Hello"
	    action:
	      open: user.hello
*/
package manifest
