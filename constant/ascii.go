package constant

// AsciiArtLogo is printed above the root help.
const AsciiArtLogo = `                   ___
  __ _  ___ ___/ (_)__ ___ __
 /  ' \/ -_) _  / / _ ` + "`" + `/\ \ /
/_/_/_/\__/\_,_/_/\_,_//_\_\
`
